package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"studentnet/internal/carousel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeManifest(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestManifestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "slides.yaml")
	writeManifest(t, path, "slides:\n  - image: a.jpg\n")

	reloaded := make(chan []carousel.Slide, 4)
	w, err := NewManifestWatcher(path, 20*time.Millisecond, func(s []carousel.Slide) {
		reloaded <- s
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	writeManifest(t, path, "slides:\n  - image: a.jpg\n  - image: b.jpg\n    caption: B\n")

	select {
	case slides := <-reloaded:
		require.Len(t, slides, 2)
		assert.Equal(t, "B", slides[1].Caption)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for manifest reload")
	}

	w.Stop()

	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.GreaterOrEqual(t, stats.Reloads, 1)
}

func TestManifestWatcher_IgnoresOtherFilesAndBadManifests(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "slides.yaml")
	writeManifest(t, path, "slides:\n  - image: a.jpg\n")

	reloaded := make(chan []carousel.Slide, 4)
	w, err := NewManifestWatcher(path, 20*time.Millisecond, func(s []carousel.Slide) {
		reloaded <- s
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	writeManifest(t, filepath.Join(dir, "notes.txt"), "unrelated")
	writeManifest(t, path, "slides: []\n")

	require.Eventually(t, func() bool {
		return w.Stats().Errors >= 1
	}, 5*time.Second, 10*time.Millisecond)

	w.Stop()

	select {
	case <-reloaded:
		t.Fatal("invalid manifest must not be delivered")
	default:
	}
}

func TestManifestWatcher_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewManifestWatcher(filepath.Join(t.TempDir(), "slides.yaml"), time.Millisecond, nil, nil)
	require.NoError(t, err)
	assert.NotPanics(t, w.Stop)
}
