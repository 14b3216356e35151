package autoconnect_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/platesketch/autoconnect"
	"github.com/katalvlaran/platesketch/surface"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	autoconnect.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { autoconnect.SetLogger(nil) })

	surf := surface.Default()
	w, h := surf.Width, surf.Height
	autoconnect.Connect(surf, []surface.Point{
		pt("tl", 0.3*w, 0.2*h),
		pt("tr", 0.7*w, 0.2*h),
		pt("bl", 0.3*w, 0.8*h),
		pt("br", 0.7*w, 0.8*h),
	}, autoconnect.WithSeed(5))

	out := buf.String()
	assert.Equal(t, 11, strings.Count(out, "autoconnect: attempt"))
	assert.Contains(t, out, "autoconnect: done")
	assert.Contains(t, out, "attempts=11")
}

func TestSetLogger_NilIsSilent(t *testing.T) {
	autoconnect.SetLogger(nil)
	assert.False(t, autoconnect.Logger().Enabled(context.Background(), slog.LevelError))
}
