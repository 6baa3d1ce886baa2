// Package main is the entry point for the sync-names application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/sync-names/internal/config"
	"github.com/joe/sync-names/internal/namesync"
	"github.com/joe/sync-names/internal/tui"
	"github.com/joe/sync-names/pkg/errors"
	"github.com/joe/sync-names/pkg/fsops"
)

const (
	exitUsage   = 1
	exitRunFail = 2
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	err = run(cfg)
	if err != nil {
		reportError(err)
		os.Exit(exitRunFail)
	}
}

func run(cfg *config.Config) error {
	fs, sourceRoot, targetRoot, closer, err := fsops.ForRoots(cfg.SourcePath, cfg.TargetPath)
	if err != nil {
		return err
	}
	defer closer()

	var dry *fsops.DryRun
	if cfg.DryRun {
		dry = fsops.NewDryRun(fs)
		fs = dry
	}

	syncer := namesync.NewSyncer(fs)
	syncer.Filter = namesync.NewArtifactFilter(cfg.Exclude)

	runner := func(emitter namesync.EventEmitter) error {
		syncer.SetEventEmitter(emitter)

		result, err := syncer.SyncNames(sourceRoot, targetRoot)
		if err != nil {
			return err
		}

		return syncer.ResolveCollisions(sourceRoot, targetRoot, result.Collisions, cfg.Postfix)
	}

	if cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		err = runner(newPlainPrinter(os.Stdout))
	} else {
		err = runTUI(runner)
	}

	if err != nil {
		return err
	}

	if dry != nil {
		printDryRunOps(dry.Ops())
	}

	return nil
}

func runTUI(runner tui.RunFunc) error {
	model := tui.NewModel(runner)

	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("display failed: %w", err)
	}

	if m, ok := final.(*tui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}

func printDryRunOps(ops []fsops.Op) {
	fmt.Printf("dry run: %d operations\n", len(ops))

	for _, op := range ops {
		switch op.Kind {
		case "rename":
			fmt.Printf("  rename %s -> %s\n", op.Path, op.To)
		case "copy":
			fmt.Printf("  copy   %s -> %s\n", op.Path, op.To)
		case "mkdir":
			fmt.Printf("  mkdir  %s\n", op.Path)
		}
	}
}

func reportError(err error) {
	enriched := errors.NewEnricher().Enrich(err, "")

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintf(os.Stderr, "Try these solutions:\n%s\n", suggestions)
	}
}
