package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/umldoc/format"
	"github.com/dhamidi/umldoc/uml"
)

func newRefsCmd(opts *options) *cobra.Command {
	var refsFormat string
	var types []string

	cmd := &cobra.Command{
		Use:   "refs <path>...",
		Short: "List the resolved references of every included type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(refsFormat, os.Stdout)
			if err != nil {
				return err
			}

			cb := opts.load(args)
			include := opts.config.Includes
			if len(types) > 0 {
				wanted := make(map[string]bool, len(types))
				for _, t := range types {
					wanted[t] = true
				}
				include = func(name string) bool { return wanted[name] }
			}

			resolver := uml.NewReferenceResolver(uml.NewLegacyTags(cb))
			excluded := opts.config.Excluded()
			for _, t := range cb.Types(include) {
				for _, ref := range resolver.Resolve(t, excluded) {
					if err := enc.Encode(ref); err != nil {
						return fmt.Errorf("encode %s: %w", refsFormat, err)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&refsFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "only list references of these qualified type names")

	return cmd
}
