package kafka_test

import (
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "bookings", Value: map[string]string{"from": "2024-05-01"}}

	out, err := msg.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("bookings"), out.Key)
	assert.JSONEq(t, `{"from":"2024-05-01"}`, string(out.Value))
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	type event struct {
		State string `json:"state"`
	}

	value, err := kafka.Decode[event](kafkaGo.Message{Value: []byte(`{"state":"CONNECTED"}`)})
	require.NoError(t, err)
	assert.Equal(t, "CONNECTED", value.State)

	_, err = kafka.Decode[event](kafkaGo.Message{Value: []byte(`not json`)})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	assert.Nil(t, kafka.New(cfg))

	cfg.Kafka.Enable = true
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	client := kafka.New(cfg)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}
