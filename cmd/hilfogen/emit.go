package main

import (
	"context"
	"fmt"
	"io"

	"github.com/uni-hildesheim/hilfogen/internal/emitter"
)

func runEmit(ctx context.Context, out io.Writer, em *emitter.Emitter) error {
	if err := em.Emit(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "Script created successfully!")
	_, _ = fmt.Fprintf(out, "File: %s\n", em.Target())
	return nil
}
