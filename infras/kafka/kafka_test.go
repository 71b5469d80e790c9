package kafka

import (
	"context"
	"hotel/config"
	"hotel/infras/otel/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *kafkaClientImpl {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"127.0.0.1:9092"}

	client, _ := New(cfg, mocks.NewOtel()).(*kafkaClientImpl)

	return client
}

func TestKafkaClient_WriterIsReusedPerTopic(t *testing.T) {
	client := newTestClient()
	require.NotNil(t, client)

	first, err := client.writer("booking.created")
	require.NoError(t, err)

	second, err := client.writer("booking.created")
	require.NoError(t, err)

	other, err := client.writer("booking.cancelled")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Len(t, client.writers, 2)
}

func TestKafkaClient_SendAfterCloseIsRejected(t *testing.T) {
	client := newTestClient()
	require.NotNil(t, client)

	_, err := client.writer("booking.created")
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.Empty(t, client.writers)

	err = client.SendMessages(context.Background(), "booking.created", Message{Key: "301", Value: map[string]int{"bookingId": 301}})

	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Empty(t, client.writers, "no writer may be created after Close")

	_, err = client.writer("booking.cancelled")
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestKafkaClient_CloseIsIdempotent(t *testing.T) {
	client := newTestClient()
	require.NotNil(t, client)

	require.NoError(t, client.Close())
	assert.NoError(t, client.Close())
}
