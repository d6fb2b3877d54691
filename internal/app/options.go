// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and persistence through port interfaces.
package app

import "time"

// Option configures a service at construction time.
type Option func(*serviceOptions)

type serviceOptions struct {
	now func() time.Time
}

// WithClock overrides the time source used for created/updated timestamps
// and due-date checks.
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) serviceOptions {
	o := serviceOptions{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
