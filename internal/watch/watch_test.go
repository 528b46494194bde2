package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexanderramin/futureself/internal/habitfile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	scenario habitfile.Scenario
	err      error
}

func startWatcher(t *testing.T, path string) (<-chan result, context.CancelFunc, <-chan error) {
	t.Helper()
	results := make(chan result, 16)
	ctx, cancel := context.WithCancel(context.Background())

	w := New(path, func(_ context.Context, s habitfile.Scenario, err error) {
		results <- result{s, err}
	}, WithDebounce(20*time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	return results, cancel, done
}

func next(t *testing.T, results <-chan result) result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return result{}
	}
}

func TestWatcher_InitialLoadAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sleepHours: 6\n"), 0o644))

	results, cancel, done := startWatcher(t, path)

	first := next(t, results)
	require.NoError(t, first.err)
	assert.Equal(t, 6.0, first.scenario.SleepHours)

	require.NoError(t, os.WriteFile(path, []byte("sleepHours: 9\n"), 0o644))
	var r result
	for r = next(t, results); r.err == nil && r.scenario.SleepHours != 9; r = next(t, results) {
	}
	require.NoError(t, r.err)
	assert.Equal(t, 9.0, r.scenario.SleepHours)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_ReportsParseErrorsAndKeepsRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sleepHours: 7\n"), 0o644))

	results, cancel, done := startWatcher(t, path)
	require.NoError(t, next(t, results).err)

	require.NoError(t, os.WriteFile(path, []byte("sleepHours: [\n"), 0o644))
	var r result
	for r = next(t, results); r.err == nil; r = next(t, results) {
	}
	assert.Error(t, r.err)

	require.NoError(t, os.WriteFile(path, []byte("sleepHours: 8\n"), 0o644))
	for r = next(t, results); r.err != nil || r.scenario.SleepHours != 8; r = next(t, results) {
	}
	assert.Equal(t, 8.0, r.scenario.SleepHours)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "habits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sleepHours: 7\n"), 0o644))

	results, cancel, done := startWatcher(t, path)
	require.NoError(t, next(t, results).err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("sleepHours: 4\n"), 0o644))
	select {
	case r := <-results:
		t.Fatalf("unexpected reload for sibling file: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "habits.yaml"), func(context.Context, habitfile.Scenario, error) {})
	assert.Error(t, w.Run(context.Background()))
}
