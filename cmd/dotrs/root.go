package dotrs

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dotrs/dotrs/internal/version"
	"github.com/dotrs/dotrs/pkg/config"
	"github.com/dotrs/dotrs/pkg/dotfiles"
	"github.com/dotrs/dotrs/pkg/logging"
	"github.com/dotrs/dotrs/pkg/topics"
	"github.com/dotrs/dotrs/pkg/ui"
)

// app carries the state shared by every command of one invocation
type app struct {
	verbosity  int
	cfg        *config.Config
	syncerOpts []dotfiles.Option
	topics     *topics.Manager
	promptKey  func(cmd *cobra.Command) (string, error)
}

// configKeyAnnotation marks flags that override a configuration key
const configKeyAnnotation = "dotrs_config_key"

// bindConfigFlag ties a command flag to a dotted configuration key
func bindConfigFlag(cmd *cobra.Command, flag, key string) {
	_ = cmd.Flags().SetAnnotation(flag, configKeyAnnotation, []string{key})
}

// flagOverrides collects the bound configuration keys set on the command line
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if keys := f.Annotations[configKeyAnnotation]; len(keys) > 0 {
			overrides[keys[0]] = f.Value.String()
		}
	})
	return overrides
}

func (a *app) syncer() *dotfiles.Syncer {
	return dotfiles.New(a.cfg, a.syncerOpts...)
}

func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(ui.FormatAuto, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd()
}

func newRootCmd(opts ...dotfiles.Option) *cobra.Command {
	return buildRootCmd(&app{syncerOpts: opts, promptKey: promptKeyFromTerminal})
}

func buildRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "dotrs",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagOverrides(cmd))
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			a.cfg = cfg

			logging.SetupLogger(a.verbosity, cfg.LogLevel)
			log.Debug().Str("command", cmd.Name()).Str("config", cfg.String()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sync",
		Title: "SYNC:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newCleanCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newEncryptCmd(a))
	rootCmd.AddCommand(newKeygenCmd())
	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newPullCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newServiceCmd(a))
	rootCmd.AddCommand(newCdCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Markdown topics render with glamour only on a terminal
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}
	if m, err := topics.Builtin(topics.Options{Renderer: renderer}); err == nil {
		a.topics = m
		m.Install(rootCmd)
		rootCmd.SetHelpCommandGroupID("misc")
	}

	return rootCmd
}
