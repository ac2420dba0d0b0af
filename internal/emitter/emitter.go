// Package emitter writes the HilFo study production R script to local storage.
package emitter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// Emitter writes Script to a fixed destination, creating the file when absent
// and truncating it when present.
type Emitter struct {
	fs     afs.Service
	target string
}

// New returns an emitter bound to targetURL. An empty targetURL falls back to
// DefaultTarget in the working directory.
func New(targetURL string) *Emitter {
	return NewWithService(afs.New(), targetURL)
}

// NewWithService is New with a caller-supplied storage service, so tests can
// point the emitter at mem:// destinations and read them back.
func NewWithService(fs afs.Service, targetURL string) *Emitter {
	if targetURL == "" {
		targetURL = DefaultTarget
	}
	// Scheme-less targets resolve against the working directory at
	// construction time, not at Emit time.
	if !strings.Contains(targetURL, "://") {
		if abs, err := filepath.Abs(targetURL); err == nil {
			targetURL = abs
		}
	}
	return &Emitter{fs: fs, target: targetURL}
}

// Target reports the resolved destination.
func (e *Emitter) Target() string {
	return e.target
}

// Emit writes Script verbatim to the target, replacing any prior content.
// There is no retry and no partial-write recovery; a failed write leaves the
// file state as defined by the storage layer.
func (e *Emitter) Emit(ctx context.Context) error {
	if err := e.fs.Upload(ctx, e.target, 0o644, strings.NewReader(Script)); err != nil {
		return fmt.Errorf("write %s: %w", e.target, err)
	}
	return nil
}
