package main

import (
	"errors"

	"github.com/fwojciec/diffmend/bubbletea"
	"github.com/fwojciec/diffmend/config"
	"github.com/fwojciec/diffmend/logger"
	"github.com/spf13/cobra"
)

// AppBuilder constructs the App once configuration and logging are ready.
type AppBuilder func(cfg *config.Config, log logger.Logger) (*App, error)

// NewRootCmd returns the diffmend command tree. build is called before any
// subcommand runs.
func NewRootCmd(build AppBuilder) *cobra.Command {
	var (
		app        *App
		configPath string
		logLevel   string
		logJSON    bool
	)

	root := &cobra.Command{
		Use:   "diffmend",
		Short: "Restore lines lost between two versions of a document",
		Long: `diffmend compares a base document with a modified one, lists the lines
that went missing and puts the ones you choose back into their original
sections of the modified document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader().Load(config.ResolvePath(configPath))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-json") {
				cfg.Log.JSON = logJSON
			}
			log := logger.New(&logger.Config{
				Level:      logger.ParseLevel(cfg.Log.Level),
				Output:     cmd.ErrOrStderr(),
				JSON:       cfg.Log.JSON,
				TimeFormat: "15:04:05",
			})
			cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))

			if app, err = build(cfg, log); err != nil {
				return err
			}
			app.Stdout = cmd.OutOrStdout()
			app.Stderr = cmd.ErrOrStderr()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/diffmend/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")

	appRef := func() *App { return app }
	root.AddCommand(
		compareCmd(appRef),
		mergeCmd(appRef),
		reviewCmd(appRef),
		historyCmd(appRef),
	)
	return root
}

func compareCmd(app func() *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "compare BASE MODIFIED",
		Short: "List lines of BASE that are missing from MODIFIED",
		Long: `List lines of BASE that are missing from MODIFIED, grouped by section.
Either argument may name a git revision as REV:PATH, e.g. HEAD~1:notes.md.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Compare(cmd.Context(), args[0], args[1], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the comparison as JSON")
	return cmd
}

func mergeCmd(app func() *App) *cobra.Command {
	var opts MergeOptions
	cmd := &cobra.Command{
		Use:   "merge BASE MODIFIED",
		Short: "Restore selected missing lines into MODIFIED",
		Example: `  diffmend merge draft.md edited.md --select 2,5
  diffmend merge draft.md edited.md --all --stdout`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.All && len(opts.IDs) > 0 {
				return errors.New("--select and --all are mutually exclusive")
			}
			opts.BasePath, opts.ModifiedPath = args[0], args[1]
			_, err := app().Merge(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().IntSliceVar(&opts.IDs, "select", nil, "Comma-separated line numbers to restore, as shown by compare")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Restore every missing line")
	cmd.Flags().StringVar(&opts.Output.Dir, "dir", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&opts.Output.Name, "name", "", "Output file name without extension (default from config)")
	cmd.Flags().StringVar(&opts.Output.Ext, "ext", "", "Output extension, e.g. .md (default from config)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the merged document instead of writing a file")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the merged document to the clipboard")
	cmd.Flags().BoolVar(&opts.Preview, "preview", false, "Print the inserted lines to stderr")
	return cmd
}

func reviewCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review BASE MODIFIED",
		Short: "Choose lines to restore interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Review(cmd.Context(), args[0], args[1])
		},
	}
}

func historyCmd(app func() *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded merges",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app().ShowHistory(limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of records to show; 0 shows all")
	return cmd
}

// Compile-time interface verification.
var _ Reviewer = (*bubbletea.Reviewer)(nil)
