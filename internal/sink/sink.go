// Package sink delivers assembled observations to downstream stores for
// backfill jobs: a Kafka topic for streaming consumers and a Postgres table
// for analytical queries.
package sink

import (
	"context"

	"github.com/couchcryptid/weathervault/pkg/weather"
)

// Loader delivers a batch of observations to a downstream store.
type Loader interface {
	Load(ctx context.Context, observations []weather.Observation) error
	Close() error
}
