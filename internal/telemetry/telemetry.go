// Package telemetry reports unrecovered askllava failures to Sentry when a
// DSN is configured. Without one every function is a no-op.
package telemetry

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

var enabled atomic.Bool

// Init configures Sentry for this process. The returned flush function
// must be called before exit so queued events are delivered.
func Init(dsn, release string) (flush func(), err error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		AttachStacktrace: true,
	}); err != nil {
		return func() {}, fmt.Errorf("initializing sentry: %w", err)
	}
	enabled.Store(true)
	return func() {
		sentry.Flush(flushTimeout)
		enabled.Store(false)
	}, nil
}

// Capture reports err. Nil errors and an uninitialised client are ignored.
func Capture(err error) {
	if err == nil || !enabled.Load() {
		return
	}
	sentry.CaptureException(err)
}
