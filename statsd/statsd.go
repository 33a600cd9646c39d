// Package statsd reports frame and system durations to a dogstatsd agent.
// Nothing is sent until Init is called with an agent address.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const (
	namespace = "dock."

	frameMetric  = "frame.duration"
	systemMetric = "system.duration"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// TimeFrame records how long the frame that began at start took.
func TimeFrame(start time.Time) {
	timing(frameMetric, time.Since(start), nil)
}

// TimeSystem records one run of the named system, tagged system:<name>.
func TimeSystem(start time.Time, system string) {
	timing(systemMetric, time.Since(start), []string{"system:" + system})
}

func timing(metric string, d time.Duration, tags []string) {
	if err := client.Timing(metric, d, tags, 1); err != nil {
		log.Logger.Warn().Err(err).Str("metric", metric).Msg("statsd timing dropped")
	}
}

// Init points the package at the agent listening on address. tags are attached
// to every metric.
func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("statsd agent address is empty")
	}
	opts := []ddstatsd.Option{ddstatsd.WithNamespace(namespace)}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}
	c, err := ddstatsd.New(address, opts...)
	if err != nil {
		return eris.Wrapf(err, "statsd agent %s", address)
	}
	client = c
	return nil
}

// Reset flushes and closes the agent client started by Init. Later timings are
// discarded until the next Init.
func Reset() error {
	if _, idle := client.(*ddstatsd.NoOpClient); idle {
		return nil
	}
	c := client
	client = &ddstatsd.NoOpClient{}
	if err := c.Flush(); err != nil {
		_ = c.Close()
		return eris.Wrap(err, "statsd flush")
	}
	return eris.Wrap(c.Close(), "statsd close")
}
