package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/fieldscout/interactionintel/internal/clients"
	"github.com/fieldscout/interactionintel/internal/clients/kafka_client"
	"github.com/fieldscout/interactionintel/internal/db"
	"github.com/fieldscout/interactionintel/internal/models"
	"github.com/fieldscout/interactionintel/internal/report"
	"github.com/fieldscout/interactionintel/internal/utils"
)

type completedAnalysis struct {
	RequestID string
	Report    models.IntelligenceReport
}

var persistBuffer = utils.NewBatchBuffer[completedAnalysis]()

// StartAnalysisConsumer reads analysis requests, runs the pipeline, and
// publishes the finished report. Persistence is batched; offsets are
// committed only after the report has been stored.
func StartAnalysisConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewAnalysisRequestIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)
	valkey := clients.GetValkeyClient()

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			persistReports(ctx, committer, valkey)
			return
		case <-ticker.C:
			persistReports(ctx, committer, valkey)
		default:
			msg, req, err := iterator.Next()
			if err != nil {
				slog.Error("[AnalysisConsumer] Failed to read analysis request",
					slog.String("error", err.Error()))
				continue
			}

			if valkey.IsRequestProcessed(ctx, req.RequestID) {
				slog.Info("[AnalysisConsumer] Skipping already processed request",
					slog.String("request_id", req.RequestID))
				if err := committer.Commit(msg, req.RequestID); err != nil {
					slog.Warn("[AnalysisConsumer] Failed to commit skipped message",
						slog.String("error", err.Error()))
				}
				continue
			}

			rep := report.Build(report.Request{
				ClientID:     req.ClientID,
				BusinessName: req.BusinessName,
				Geo:          req.Geo,
				Industry:     req.Industry,
				PeriodDays:   req.PeriodDays,
				Records:      req.Records,
			})

			if err := kafka_client.PublishToKafka(
				kafka_client.KAFKA_TOPIC_INTELLIGENCE_REPORTS, req.ClientID, rep); err != nil {
				slog.Error("[AnalysisConsumer] Failed to publish report",
					slog.String("request_id", req.RequestID),
					slog.String("error", err.Error()))
				continue
			}

			utils.TrackMessage(req.RequestID, msg)
			persistBuffer.Add(completedAnalysis{RequestID: req.RequestID, Report: rep})
			if persistBuffer.Size() >= utils.BATCH_SIZE {
				persistReports(ctx, committer, valkey)
			}
		}
	}
}

func persistReports(ctx context.Context, committer *kafka_client.KafkaCommitHandler, valkey *clients.ValkeyClient) {
	batch := persistBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for _, completed := range batch {
		var storeErr error
		for i := 0; i < 3; i++ {
			storeErr = db.StoreReport(ctx, completed.Report)
			if storeErr == nil {
				break
			}
			slog.Error("[AnalysisConsumer] Failed to store report",
				slog.String("request_id", completed.RequestID),
				slog.String("error", storeErr.Error()),
				slog.Int("attempt", i+1))
		}

		if storeErr == nil {
			if err := db.BatchInsertOpportunities(ctx,
				completed.Report.ClientID, completed.Report.Opportunities); err != nil {
				slog.Error("[AnalysisConsumer] Failed to store opportunities",
					slog.String("request_id", completed.RequestID),
					slog.String("error", err.Error()))
			}
			if err := valkey.CacheReport(ctx, completed.Report); err != nil {
				slog.Warn("[AnalysisConsumer] Failed to cache report",
					slog.String("request_id", completed.RequestID),
					slog.String("error", err.Error()))
			}
			if err := valkey.MarkRequestProcessed(ctx, completed.RequestID); err != nil {
				slog.Warn("[AnalysisConsumer] Failed to mark request processed",
					slog.String("request_id", completed.RequestID),
					slog.String("error", err.Error()))
			}
		}

		msg, found := utils.GetMessageForRequest(completed.RequestID)
		if found {
			if err := committer.Commit(msg, completed.RequestID); err != nil {
				slog.Warn("[AnalysisConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
