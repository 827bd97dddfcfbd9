package progrock_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/meowstrap/internal/adapters/telemetry/progrock"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(update *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, update)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertexes() []*vprogrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*vprogrock.Vertex
	for _, u := range w.updates {
		out = append(out, u.Vertexes...)
	}
	return out
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecorder_Record(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w)

	ctx, vertex := recorder.Record(context.Background(), "sync")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("installing bash\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelInfo, "meow sync")
	vertex.Cached()
	vertex.Complete(errors.New("boom"))

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)

	var named, cached, failed bool
	for _, v := range w.vertexes() {
		if v.GetName() == "sync" {
			named = true
		}
		if v.GetCached() {
			cached = true
		}
		if v.GetError() == "boom" {
			failed = true
		}
	}
	assert.True(t, named, "expected a vertex named sync")
	assert.True(t, cached, "expected the vertex to be marked cached")
	assert.True(t, failed, "expected the vertex error to be recorded")
}

// readJournal decodes every status update of the journal at path.
func readJournal(t *testing.T, path string) []*vprogrock.StatusUpdate {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var updates []*vprogrock.StatusUpdate
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var update vprogrock.StatusUpdate
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &update))
		updates = append(updates, &update)
	}
	require.NoError(t, scanner.Err())
	return updates
}

func TestNewJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.jsonl")
	recorder, err := progrock.NewJournal(path)
	require.NoError(t, err)

	_, configStep := recorder.Record(context.Background(), "write-config")
	configStep.Cached()
	configStep.Complete(nil)

	_, syncStep := recorder.Record(context.Background(), "sync")
	_, err = syncStep.Stdout().Write([]byte("installing bash\n"))
	require.NoError(t, err)
	syncStep.Log(domain.LogLevelDebug, "meow --root /mnt/newsys sync")
	syncStep.Complete(errors.New("exit status 3"))

	require.NoError(t, recorder.Close())

	updates := readJournal(t, path)
	require.NotEmpty(t, updates)

	names := map[string]string{}
	var cached, failed, groupDone bool
	var logs strings.Builder
	for _, u := range updates {
		for _, v := range u.Vertexes {
			names[v.GetId()] = v.GetName()
			if v.GetName() == "write-config" && v.GetCached() {
				cached = true
			}
			if v.GetName() == "sync" && v.GetError() == "exit status 3" {
				failed = true
			}
		}
		for _, l := range u.Logs {
			if names[l.GetVertex()] == "sync" {
				logs.Write(l.GetData())
			}
		}
		for _, g := range u.Groups {
			if g.GetCompleted() != nil {
				groupDone = true
			}
		}
	}

	assert.True(t, cached, "expected write-config to be journaled as cached")
	assert.True(t, failed, "expected the sync error to be journaled")
	assert.True(t, groupDone, "expected Close to complete the session")
	assert.Contains(t, logs.String(), "installing bash\n")
	assert.Contains(t, logs.String(), "meow --root /mnt/newsys sync")
}

func TestNewJournal_Unwritable(t *testing.T) {
	_, err := progrock.NewJournal(filepath.Join(t.TempDir(), "missing", "steps.jsonl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
