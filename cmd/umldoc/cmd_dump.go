package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/umldoc/java"
)

func newDumpCmd(opts *options) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <path>...",
		Short: "Dump the loaded class models as a model document",
		Long: `Writes the class models read from the given paths as a YAML or JSON model
document. The output can be edited and read back in place of the classes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb := opts.load(args)
			doc := java.Document{Classes: cb.AllClasses()}

			switch dumpFormat {
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				return nil
			}
			return fmt.Errorf("unknown format: %s (expected yaml or json)", dumpFormat)
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml", "output format (yaml, json)")

	return cmd
}
