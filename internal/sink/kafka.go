package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/weathervault/internal/observability"
	"github.com/couchcryptid/weathervault/pkg/weather"
)

// KafkaLoader publishes observations to a Kafka topic, one message per
// observation, keyed by station id so a station's rows stay ordered within
// a partition.
type KafkaLoader struct {
	writer  *kafkago.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewKafkaLoader creates a producer for the given brokers and topic.
func NewKafkaLoader(brokers []string, topic string, logger *slog.Logger, metrics *observability.Metrics) *KafkaLoader {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaLoader{writer: w, logger: logger, metrics: metrics}
}

// Load serializes and publishes a batch of observations in a single
// WriteMessages call.
func (l *KafkaLoader) Load(ctx context.Context, observations []weather.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, len(observations))
	for i := range observations {
		msg, err := serializeToMessage(observations[i])
		if err != nil {
			l.metrics.SinkLoads.WithLabelValues("kafka", "error").Inc()
			return err
		}
		msgs[i] = msg
	}

	if err := l.writer.WriteMessages(ctx, msgs...); err != nil {
		l.metrics.SinkLoads.WithLabelValues("kafka", "error").Inc()
		return fmt.Errorf("write observations: %w", err)
	}

	l.metrics.SinkBatchSize.Observe(float64(len(observations)))
	l.metrics.SinkLoads.WithLabelValues("kafka", "success").Inc()
	l.logger.Debug("observations published", "count", len(observations))
	return nil
}

func (l *KafkaLoader) Close() error {
	return l.writer.Close()
}

// serializeToMessage marshals an observation into a Kafka message.
func serializeToMessage(o weather.Observation) (kafkago.Message, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(o.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station_id", Value: []byte(o.ID)},
			{Key: "observed_at", Value: []byte(o.Time.Format(time.RFC3339))},
		},
	}, nil
}
