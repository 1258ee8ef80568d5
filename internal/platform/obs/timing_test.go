package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTimeLogsOperation(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel).With().Str("req_id", "abc").Logger()
	ctx := l.WithContext(context.Background())

	func() {
		var err error
		defer Time(ctx, "test.op")(&err)
	}()

	assert.Contains(t, buf.String(), `"op":"test.op"`)
	assert.Contains(t, buf.String(), `"req_id":"abc"`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestTimeLogsFailureAtWarn(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	func() {
		err := errors.New("boom")
		defer Time(ctx, "test.fail")(&err)
	}()

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestTimeWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		var err error
		defer Time(context.Background(), "test.nolog")(&err)
	})
}
