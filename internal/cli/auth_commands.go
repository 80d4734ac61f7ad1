package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var email string
	var senha string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica o operador no backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			if senha == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Senha: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("ler senha: %w", err)
				}
				senha = strings.TrimRight(line, "\r\n")
			}

			user, err := a.Auth.Login(cmd.Context(), email, senha)
			if err != nil {
				return err
			}

			name := user.Name
			if name == "" {
				name = user.Email
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Autenticado como %s", name))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-mail do operador")
	cmd.Flags().StringVar(&senha, "senha", "", "senha (se omitida, lida do terminal)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Descarta o token de sessão",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			if err := a.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada")
			return nil
		},
	}
}
