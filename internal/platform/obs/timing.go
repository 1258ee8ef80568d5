package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time starts timing an operation. Call the returned func (usually deferred)
// with a pointer to the operation's error; it logs the duration through the
// logger carried by ctx, at warn level when the operation failed.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		l := zerolog.Ctx(ctx)
		dur := time.Since(start)

		ev := l.Debug()
		if errp != nil && *errp != nil {
			ev = l.Warn().Err(*errp)
		}
		ev.Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("operation finished")
	}
}
