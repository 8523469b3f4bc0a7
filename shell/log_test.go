package shell

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() {
		SetLogger(nil)
	})
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err := Build(rampGrid(4, 4), noClipConfig())
	require.NoError(t, err)
	out := buf.String()
	for _, msg := range []string{"filtered samples", "built layers", "stitched seams"} {
		assert.Contains(t, out, msg)
	}

	SetLogger(nil)
	buf.Reset()
	_, err = Build(rampGrid(4, 4), noClipConfig())
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
