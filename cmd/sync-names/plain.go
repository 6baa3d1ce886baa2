package main

import (
	"fmt"
	"io"

	"github.com/joe/sync-names/internal/namesync"
)

// plainPrinter is a namesync.EventEmitter that writes one line per event,
// suitable for non-TTY output and piping.
type plainPrinter struct {
	w io.Writer
}

func newPlainPrinter(w io.Writer) *plainPrinter {
	return &plainPrinter{w: w}
}

// Emit implements namesync.EventEmitter.
func (p *plainPrinter) Emit(event namesync.Event) {
	switch ev := event.(type) {
	case namesync.DirStarted:
		fmt.Fprintf(p.w, "dir      %s\n", ev.Source)
	case namesync.FileRenamed:
		fmt.Fprintf(p.w, "rename   %s -> %s\n", ev.OldPath, ev.NewBase)
	case namesync.FileCopied:
		fmt.Fprintf(p.w, "copy     %s -> %s\n", ev.Source, ev.Dest)
	case namesync.CollisionFound:
		fmt.Fprintf(p.w, "defer    %s (%d candidates)\n", ev.Source, ev.Candidates)
	case namesync.WalkComplete:
		fmt.Fprintf(p.w, "matched  %d files: %d renamed, %d copied, %d collisions\n",
			ev.Processed, ev.Renamed, ev.Copied, ev.Collisions)
	case namesync.CollisionResolved:
		if ev.Copied {
			fmt.Fprintf(p.w, "fallback %s -> %s\n", ev.Source, ev.Target)
		} else {
			fmt.Fprintf(p.w, "resolve  %s -> %s\n", ev.Target, ev.NewBase)
		}
	case namesync.ResolveComplete:
		fmt.Fprintf(p.w, "resolved %d collisions: %d renamed, %d copied\n",
			ev.Renamed+ev.Copied, ev.Renamed, ev.Copied)
	}
}
