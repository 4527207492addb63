package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var messageMap sync.Map

func TrackMessage(requestID string, msg *kafka.Message) {
	messageMap.Store(requestID, msg)
}

func GetMessageForRequest(requestID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(requestID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(requestID)
	return msg.(*kafka.Message), true
}
