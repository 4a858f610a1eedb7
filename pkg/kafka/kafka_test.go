package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

type event struct {
	Type   string `json:"type"`
	BookID string `json:"bookId"`
}

func newCB() circuit_breaker.CircuitBreaker {
	return circuit_breaker.NewCircuitBreaker(circuit_breaker.Settings{
		RecordLength:     1,
		Timeout:          time.Minute,
		Percentile:       1,
		RecoveryRequests: 1,
	})
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"type":"book.returned","bookId":"b-1"}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})

	p := kafka.NewPublisher(producer, "", newCB())
	require.NoError(t, p.Publish(context.Background(), "b-1", event{Type: "book.returned", BookID: "b-1"}))
	require.NoError(t, p.Close())
}

func TestPublisher_OpensCircuit(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	errBroker := errors.New("broker down")
	producer.ExpectSendMessageAndFail(errBroker)

	p := kafka.NewPublisher(producer, "topic", newCB())
	require.ErrorIs(t, p.Publish(context.Background(), "k", event{}), errBroker)
	require.ErrorIs(t, p.Publish(context.Background(), "k", event{}), circuit_breaker.ErrOpenCB)
	require.NoError(t, p.Close())
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()
	require.False(t, kafka.Config{}.Enabled())
	require.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}
