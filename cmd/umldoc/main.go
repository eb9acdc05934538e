package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/umldoc/config"
	"github.com/dhamidi/umldoc/java/codebase"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	verbose    int
	logPath    string
	configPath string
	pattern    string

	config *config.Config
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "umldoc",
		Short:         "Generate PlantUML class diagrams from compiled Java classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbose, "verbose", "v", "log more, repeat for even more")
	flags.StringVar(&opts.logPath, "log", "", "write the log to this file instead of stderr")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON(C) configuration file")
	flags.StringVar(&opts.pattern, "pattern", codebase.DefaultPattern, "glob selecting the inputs read from directories")

	rootCmd.AddCommand(newDiagramCmd(opts))
	rootCmd.AddCommand(newRefsCmd(opts))
	rootCmd.AddCommand(newTypesCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "umldoc: %s\n", err)
		os.Exit(1)
	}
}

func (o *options) setup() error {
	var path *string
	if o.logPath != "" {
		path = &o.logPath
	}
	commonlog.Configure(o.verbose, path)

	if o.configPath == "" {
		o.config = config.Default()
		return nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.config = cfg
	return nil
}

// load scans paths into a new codebase. Unreadable inputs are reported but
// do not stop the command.
func (o *options) load(paths []string) *codebase.Codebase {
	cb := codebase.New()
	if err := cb.Scan(o.pattern, paths...); err != nil {
		log.Errorf("%s", err)
	}
	return cb
}
