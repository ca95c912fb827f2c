// Package progrock records pipeline stages as progrock vertices.
package progrock

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"
	"go.trai.ch/rtcbuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock.Recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder that renders stage progress to standard error.
// Standard output is left to the link directives.
func New() *Recorder {
	return NewConsole(os.Stderr)
}

// NewConsole creates a Recorder that renders stage progress as plain text to w.
func NewConsole(w io.Writer) *Recorder {
	return NewRecorder(console.NewWriter(w))
}

// NewRecorder creates a Recorder that writes status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named after the stage and attaches it to the returned context.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	var cfg ports.VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var vopts []progrock.VertexOpt
	if cfg.Internal {
		vopts = append(vopts, progrock.Internal())
	}

	v := r.rec.Vertex(digest.FromString(name), name, vopts...)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close renders any pending progress and closes the underlying writer.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
