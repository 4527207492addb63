package kafka_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/fieldscout/interactionintel/internal/models"
)

// AnalysisRequestIterator reads the analysis-requests topic and hands
// back decoded requests. Malformed payloads and requests without an id
// are logged and skipped in place, so the consumer loop only ever sees
// work it can run.
type AnalysisRequestIterator struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewAnalysisRequestIterator(ctx context.Context, consumer *kafka.Consumer) *AnalysisRequestIterator {
	return &AnalysisRequestIterator{
		consumer: consumer,
		ctx:      ctx,
	}
}

// Next blocks until a decodable analysis request arrives. Read failures
// are retried up to MAX_RETRIES; a dead broker set aborts immediately.
func (it *AnalysisRequestIterator) Next() (*kafka.Message, models.AnalysisRequest, error) {
	if it.consumer == nil {
		return nil, models.AnalysisRequest{}, errors.New("[RequestIterator] Kafka consumer has not been initialized")
	}

	attempts := 0
	for {
		select {
		case <-it.ctx.Done():
			slog.Warn("[RequestIterator] Context cancelled, stopping iterator")
			return nil, models.AnalysisRequest{}, it.ctx.Err()
		default:
			msg, err := it.consumer.ReadMessage(-1)
			if err != nil {
				if kafkaErr, ok := err.(kafka.Error); ok && kafkaErr.Code() == kafka.ErrAllBrokersDown {
					slog.Error("[RequestIterator] All Kafka brokers are down. Aborting")
					return nil, models.AnalysisRequest{}, err
				}

				attempts++
				if attempts >= MAX_RETRIES {
					return nil, models.AnalysisRequest{}, fmt.Errorf("[RequestIterator] Failed to read message after %d retries", MAX_RETRIES)
				}
				slog.Warn("[RequestIterator] Failed to read message, retrying...",
					slog.Int("attempt", attempts),
					slog.Int("max_retries", MAX_RETRIES),
					slog.String("error", err.Error()))
				time.Sleep(RETRY_DELAY)
				continue
			}

			req, err := decodeAnalysisRequest(msg.Value)
			if err != nil {
				slog.Warn("[RequestIterator] Skipping undecodable analysis request",
					slog.String("error", err.Error()),
					slog.String("partition", fmt.Sprintf("%d", msg.TopicPartition.Partition)),
					slog.String("offset", fmt.Sprintf("%d", msg.TopicPartition.Offset)))
				continue
			}
			return msg, req, nil
		}
	}
}

// decodeAnalysisRequest unpacks one message payload. A request without a
// request id cannot be deduplicated and is rejected.
func decodeAnalysisRequest(value []byte) (models.AnalysisRequest, error) {
	var req models.AnalysisRequest
	if err := json.Unmarshal(value, &req); err != nil {
		return models.AnalysisRequest{}, fmt.Errorf("malformed analysis request: %w", err)
	}
	if req.RequestID == "" {
		return models.AnalysisRequest{}, errors.New("analysis request is missing request_id")
	}
	return req, nil
}
