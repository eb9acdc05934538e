package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTypesCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "types <path>...",
		Short: "List the types that get a diagram",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb := opts.load(args)
			include := opts.config.Includes
			if all {
				include = nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, t := range cb.Types(include) {
				source := ""
				if c := cb.FindClass(t.QualifiedName()); c != nil {
					source = c.Source
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Kind(), t.QualifiedName(), source)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every loaded type, ignoring include patterns")

	return cmd
}
