// Package natsconn provides a NATS connection factory with fail-fast
// semantics so misconfigured deployments surface at startup.
package natsconn

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

type Options struct {
	URL           string
	MaxReconnects int           // defaults to 5
	ReconnectWait time.Duration // defaults to 2s
}

func Connect(opts Options) (*nats.Conn, error) {
	if opts.MaxReconnects == 0 {
		opts.MaxReconnects = 5
	}
	if opts.ReconnectWait == 0 {
		opts.ReconnectWait = 2 * time.Second
	}

	nc, err := nats.Connect(opts.URL,
		nats.MaxReconnects(opts.MaxReconnects),
		nats.ReconnectWait(opts.ReconnectWait),
		nats.RetryOnFailedConnect(false),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s (max_reconnects=%d, wait=%s): %w",
			opts.URL, opts.MaxReconnects, opts.ReconnectWait, err)
	}
	return nc, nil
}
