package kafka

import (
	"context"

	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const LendingTopic = "lending-events"

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	Topic string   `yaml:"topic" envconfig:"LENDING_EVENTS_TOPIC" default:"lending-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Publisher sends JSON-encoded messages to a single topic. Calls go through a
// circuit breaker so an unreachable broker fails fast.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

func NewPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) *Publisher {
	if topic == "" {
		topic = LendingTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (p *Publisher) Publish(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(v)
	if err != nil {
		return errors.Wrap(err, "kafka.Encode")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
