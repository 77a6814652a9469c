package dotrs

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dotrs/dotrs/pkg/dotfiles"
	"github.com/dotrs/dotrs/pkg/git"
	"github.com/dotrs/dotrs/pkg/service"
)

func newImportCmd(a *app) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:     "import <uri>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Example: MsgImportExample,
		GroupID: "sync",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.syncer().Import(cmd.Context(), dotfiles.ImportOptions{
				URL:    args[0],
				Branch: branch,
			})
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.Success(MsgImported, args[0], p.Path(a.cfg.StageDir))
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", dotfiles.DefaultBranch, MsgFlagBranch)

	return cmd
}

func newPullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "pull",
		Short:   MsgPullShort,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.syncer().Pull(cmd.Context()); err != nil {
				return err
			}
			a.printer(cmd).Success(MsgPulled)
			return nil
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	var message, author string

	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.syncer().Update(cmd.Context(), dotfiles.UpdateOptions{
				Author:  author,
				Message: message,
			})
			if err != nil {
				return err
			}
			a.printer(cmd).Success(MsgUpdateStatus, status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", MsgFlagMessage)
	cmd.Flags().StringVar(&author, "author", git.DefaultCommitAuthor, MsgFlagAuthor)

	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := a.syncer().Status()
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if len(changes) == 0 {
				p.Muted(MsgStageClean)
				return nil
			}
			p.Title(MsgPendingChanges)
			for _, c := range changes {
				p.Line("  %s", c)
			}
			return nil
		},
	}
}

func newServiceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Short:   MsgServiceShort,
		Long:    MsgServiceLong,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag values arrive through the config overrides
			timings := a.cfg.Service

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := service.New(service.Options{
				StageDir:      a.cfg.StageDir,
				ApplyDelay:    timings.ApplyDelay,
				UpdateDelay:   timings.UpdateDelay,
				PullFrequency: timings.PullFrequency,
			}, dotfiles.WatchOperations{Syncer: a.syncer()})

			p := a.printer(cmd)
			p.Success(MsgServiceStarting, p.Path(a.cfg.StageDir), timings.ApplyDelay, timings.UpdateDelay, timings.PullFrequency)
			return svc.Run(ctx)
		},
	}

	cmd.Flags().Duration("apply-delay", 0, MsgFlagApplyDelay)
	cmd.Flags().Duration("update-delay", 0, MsgFlagUpdateDelay)
	cmd.Flags().Duration("pull-frequency", 0, MsgFlagPullFrequency)
	bindConfigFlag(cmd, "apply-delay", "service.apply_delay")
	bindConfigFlag(cmd, "update-delay", "service.update_delay")
	bindConfigFlag(cmd, "pull-frequency", "service.pull_frequency")

	return cmd
}
