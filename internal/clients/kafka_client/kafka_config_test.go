package kafka_client

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKafkaConfigDefaults(t *testing.T) {
	// t.Setenv registers restoration; unsetting afterwards exercises the
	// default path without leaking into other tests.
	t.Setenv("KAFKA_BROKER", "x")
	t.Setenv("KAFKA_CONSUMER_GROUP_ID", "x")
	t.Setenv("KAFKA_CONSUMER_TOPIC", "x")
	os.Unsetenv("KAFKA_BROKER")
	os.Unsetenv("KAFKA_CONSUMER_GROUP_ID")
	os.Unsetenv("KAFKA_CONSUMER_TOPIC")

	cfg := GetKafkaConfig()
	assert.Equal(t, "localhost:29092", cfg.Broker)
	assert.Equal(t, "interactionintel-consumer-group", cfg.GroupID)
	assert.Equal(t, KAFKA_TOPIC_ANALYSIS_REQUESTS, cfg.Topic)
}

func TestGetKafkaConfigOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKER", "broker:9092")
	t.Setenv("KAFKA_CONSUMER_GROUP_ID", "group-a")
	t.Setenv("KAFKA_CONSUMER_TOPIC", "custom-topic")

	cfg := GetKafkaConfig()
	assert.Equal(t, "broker:9092", cfg.Broker)
	assert.Equal(t, "group-a", cfg.GroupID)
	assert.Equal(t, "custom-topic", cfg.Topic)
}
