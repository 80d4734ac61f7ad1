package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"eterno_memorial/internal/app"
	"eterno_memorial/internal/config"
)

// commandContext lazily builds the application once a subcommand
// actually needs it, so `--help` never touches config or redis.
type commandContext struct {
	configFlag *string
	setup      func(env string) *slog.Logger

	app *app.App
}

func (c *commandContext) ensureApp() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	cfg := config.MustLoad(*c.configFlag)
	log := c.setup(cfg.Env)

	a, err := app.New(log, cfg)
	if err != nil {
		return nil, err
	}

	c.app = a
	return a, nil
}

func (c *commandContext) close() {
	if c.app != nil {
		_ = c.app.Close()
	}
}

func Execute(setup func(env string) *slog.Logger) {
	cmd := newRootCommand(setup)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("erro: %v", err))
		os.Exit(1)
	}
}

func newRootCommand(setup func(env string) *slog.Logger) *cobra.Command {
	var configFlag string

	ctx := &commandContext{configFlag: &configFlag, setup: setup}

	rootCmd := &cobra.Command{
		Use:           "eterno-memorial",
		Short:         "Painel de administração do Eterno Memorial",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "caminho do arquivo de configuração")

	rootCmd.AddCommand(newLoginCommand(ctx))
	rootCmd.AddCommand(newLogoutCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newGalleryCommand(ctx))
	rootCmd.AddCommand(newCreateCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newCommentsCommand(ctx))
	rootCmd.AddCommand(newCommentCommand(ctx))

	return rootCmd
}
