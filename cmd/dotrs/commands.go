package dotrs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotrs/dotrs/internal/version"
	"github.com/dotrs/dotrs/pkg/config"
	"github.com/dotrs/dotrs/pkg/dotfiles"
	"github.com/dotrs/dotrs/pkg/filesystem"
	"github.com/dotrs/dotrs/pkg/profile"
	"github.com/dotrs/dotrs/pkg/style"
)

// profileNamesCompletion completes --profile from the stage's profiles.
// Completion runs without the root pre-run, so config is loaded here.
func profileNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := profile.NewStore(filesystem.NewOS(), cfg.StageDir).Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newApplyCmd(a *app) *cobra.Command {
	var profileName, key string

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				key = a.cfg.DecryptionKey
			}

			res, err := a.syncer().Apply(cmd.Context(), dotfiles.ApplyOptions{
				Profile:       profileName,
				DecryptionKey: key,
			})
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.Statuses(style.StatusWritten, res.Written)
			p.Statuses(style.StatusRemoved, res.Removed)
			for _, f := range res.CleanupFailures {
				p.Warning(MsgStaleKept, p.Path(f.Path), f.Err)
			}
			if res.Profile != "" {
				p.Success(MsgAppliedProfile, len(res.Written), p.Profile(res.Profile))
			} else {
				p.Success(MsgApplied, len(res.Written))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", MsgFlagProfile)
	cmd.Flags().StringVarP(&key, "key", "k", "", MsgFlagKey)
	_ = cmd.RegisterFlagCompletionFunc("profile", profileNamesCompletion)

	return cmd
}

func newCleanCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.syncer().Clean(dotfiles.CleanOptions{Force: force})
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.Statuses(style.StatusRemoved, res.Removed)
			for _, f := range res.Failures {
				p.Warning(MsgStaleKept, p.Path(f.Path), f.Err)
			}
			p.Success(MsgCleaned, len(res.Removed))
			if len(res.Failures) > 0 {
				if force {
					p.Warning(MsgCleanForgotten, len(res.Failures))
				} else {
					p.Warning(MsgCleanKept, len(res.Failures))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var asTree bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracked, err := a.syncer().List()
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if len(tracked) == 0 {
				p.Muted(MsgNoTrackedFiles)
				return nil
			}
			if asTree {
				return p.Tree(a.cfg.HomeDir, tracked)
			}
			p.Title(MsgTrackedFiles)
			return p.BulletList(tracked)
		},
	}

	cmd.Flags().BoolVarP(&asTree, "tree", "t", false, MsgFlagTree)

	return cmd
}

func newCdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "cd",
		Short:   MsgCdShort,
		Long:    MsgCdLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfg.StageDir)
			return err
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.cfg.Dump()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [name]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if a.topics == nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return a.topics.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.topics == nil {
				return fmt.Errorf("help topics are not available")
			}
			if len(args) == 0 {
				a.topics.WriteIndex(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			topic, ok := a.topics.Get(args[0])
			if !ok {
				return fmt.Errorf(MsgErrUnknownTopic, args[0])
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.topics.Render(topic))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat+"\n", version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
