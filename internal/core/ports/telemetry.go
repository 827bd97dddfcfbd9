package ports

import (
	"context"
	"io"

	"go.trai.ch/meowstrap/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of the bootstrap steps.
type Telemetry interface {
	// Record starts a vertex for the named step.
	// The returned context carries the vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close ends the session and flushes anything still buffered.
	Close() error
}

// Vertex represents a single recorded step.
type Vertex interface {
	// Stdout returns a writer for the step's standard output.
	Stdout() io.Writer
	// Stderr returns a writer for the step's standard error.
	Stderr() io.Writer
	// Log records a message against the step.
	Log(level domain.LogLevel, msg string)
	// Cached marks the step as having produced no change.
	Cached()
	// Complete marks the step as finished, failed if err is not nil.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
