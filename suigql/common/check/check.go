package check

import (
	"fmt"

	"github.com/rs/zerolog"
)

// These functions are meant to simplify panicking in the code.
// Always consider returning errors instead of panicking!
// Data coming from the node is never checked with them: malformed responses are errors.

// PanicIfNot panics on false (use as simple assert).
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIfNotf panics on false with the given message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfErr calls panic(err) if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// LogAndPanicIfErrf logs the error with the provided logger and message and panics if err is not nil.
func LogAndPanicIfErrf(err error, logger zerolog.Logger, format string, args ...any) {
	if err != nil {
		l := logger.With().CallerWithSkipFrameCount(3).Logger()
		l.Error().Err(err).Msgf(format, args...)
		panic(err)
	}
}
