package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/fieldscout/interactionintel/internal/models"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const (
	VALKEY_PROCESSED_REQUESTS_KEY = "intel:processed_requests"
	valkeyReportKeyPrefix         = "intel:report:"

	processedRequestTTLSeconds = 86400
	reportTTLSeconds           = 6 * 3600
)

func valkeyOptions() valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress: []string{
			os.Getenv("VALKEY_INIT_ADDRESS"),
		},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		client, err := valkey.NewClient(valkeyOptions())
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func GetValkeyClient() *ValkeyClient {
	if valkeyInstance == nil {
		panic("[ValkeyClient] Error: Valkey client is not initialized")
	}
	return valkeyInstance
}

func (vc *ValkeyClient) recreateClient() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[ValkeyClient] Recreate failed and was recovered from panic",
				slog.Any("panic", r))
		}
	}()

	vc.mu.Lock()
	defer vc.mu.Unlock()
	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := valkey.NewClient(valkeyOptions())
	if err != nil {
		panic(fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error()))
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	vc.Client = client
}

// MarkRequestProcessed records a finished analysis request id so a
// replayed Kafka message is not analyzed twice.
func (vc *ValkeyClient) MarkRequestProcessed(ctx context.Context, requestID string) error {
	completed := []valkey.Completed{
		vc.Client.B().Sadd().Key(VALKEY_PROCESSED_REQUESTS_KEY).Member(requestID).Build(),
		vc.Client.B().Expire().Key(VALKEY_PROCESSED_REQUESTS_KEY).Seconds(processedRequestTTLSeconds).Build(),
	}

	responses := vc.DoMultiWithRetry(ctx, completed, 3)
	for _, res := range responses {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[ValkeyClient] Marked request as processed",
		slog.String("request_id", requestID))
	return nil
}

// IsRequestProcessed reports whether a request id was already handled.
func (vc *ValkeyClient) IsRequestProcessed(ctx context.Context, requestID string) bool {
	res := vc.DoWithRetry(ctx, vc.Client.B().Sismember().Key(VALKEY_PROCESSED_REQUESTS_KEY).Member(requestID).Build(), 3)

	if err := res.Error(); isConnectionError(err) {
		vc.recreateClient()
	}

	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}

// CacheReport stores the latest report for a client with a TTL so the
// dashboard can re-read it without a re-run.
func (vc *ValkeyClient) CacheReport(ctx context.Context, rep models.IntelligenceReport) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("[ValkeyClient] failed to serialize report: %w", err)
	}

	key := valkeyReportKeyPrefix + rep.ClientID
	res := vc.DoWithRetry(ctx,
		vc.Client.B().Set().Key(key).Value(string(data)).ExSeconds(reportTTLSeconds).Build(), 3)
	if err := res.Error(); err != nil {
		return err
	}

	slog.Info("[ValkeyClient] Cached intelligence report",
		slog.String("client_id", rep.ClientID))
	return nil
}

// GetCachedReport loads the cached report for a client, if any.
func (vc *ValkeyClient) GetCachedReport(ctx context.Context, clientID string) (models.IntelligenceReport, bool) {
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(valkeyReportKeyPrefix+clientID).Build(), 3)
	data, err := res.AsBytes()
	if err != nil {
		return models.IntelligenceReport{}, false
	}

	var rep models.IntelligenceReport
	if err := json.Unmarshal(data, &rep); err != nil {
		slog.Warn("[ValkeyClient] Failed to decode cached report",
			slog.String("client_id", clientID),
			slog.String("error", err.Error()))
		return models.IntelligenceReport{}, false
	}
	return rep, true
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] DoMulti failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				if isConnectionError(r.Error()) {
					vc.recreateClient()
				}
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
