package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/umldoc/java/codebase"
	"github.com/dhamidi/umldoc/plantuml"
	"github.com/dhamidi/umldoc/uml"
)

var log = commonlog.GetLogger("umldoc")

func newDiagramCmd(opts *options) *cobra.Command {
	var outputDir string
	var watch bool

	cmd := &cobra.Command{
		Use:   "diagram <path>...",
		Short: "Write a class diagram for every included type",
		Long: `Reads class files, jars and model documents from the given paths and
writes one PlantUML diagram per type selected by the configured include
patterns. With --watch the diagrams are regenerated whenever an input changes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputDir != "" {
				opts.config.Output.Directory = outputDir
			}
			cb := opts.load(args)
			g := &generator{opts: opts, codebase: cb}
			if err := g.generate(); err != nil && !watch {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			w := codebase.NewWatcher(cb, opts.pattern)
			w.OnChange = func(paths []string) {
				if err := g.generate(); err != nil {
					log.Errorf("%s", err)
				}
			}
			if err := w.Watch(ctx, args...); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to write diagrams to (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate diagrams when inputs change")

	return cmd
}

// generator writes all diagrams of a codebase; runs never overlap.
type generator struct {
	mu       sync.Mutex
	opts     *options
	codebase *codebase.Codebase
}

func (g *generator) generate() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cfg := g.opts.config
	resolver := uml.NewReferenceResolver(uml.NewLegacyTags(g.codebase))
	types := g.codebase.Types(cfg.Includes)
	log.Noticef("Generating %d diagrams.", len(types))

	var errs []error
	for _, t := range types {
		f, ok := plantuml.ForType(cfg, t)
		if !ok {
			return fmt.Errorf("unsupported output extension %q", cfg.Output.Extension)
		}
		if err := f.Write(uml.NewClassDiagram(g.codebase, t, resolver, cfg)); err != nil {
			log.Errorf("%s", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
