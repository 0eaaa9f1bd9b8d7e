// Package zerolog provides logging decorators for newslens services.
// Each decorator delegates to the wrapped service and records one event per
// call with its inputs, outputs, duration and error.
package zerolog

import "github.com/rs/zerolog"

// event returns an info event, or a warning carrying err when it is non-nil.
func event(logger zerolog.Logger, err error) *zerolog.Event {
	if err != nil {
		return logger.Warn().Err(err)
	}
	return logger.Info()
}
