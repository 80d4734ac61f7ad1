package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCommentsCommand(ctx *commandContext) *cobra.Command {
	var pagina int

	cmd := &cobra.Command{
		Use:   "comments <slug>",
		Short: "Lista os comentários de um memorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			// the first load learns the page count, so out-of-range
			// --pagina values fall back to page 1 instead of erroring
			thread := a.CommentThread(args[0])
			if err := thread.Load(cmd.Context(), 1); err != nil {
				return err
			}
			if pagina > 1 {
				if err := thread.Load(cmd.Context(), pagina); err != nil {
					return err
				}
			}

			rows := make([][]string, 0, len(thread.Comentarios()))
			for _, c := range thread.Comentarios() {
				rows = append(rows, []string{
					c.CriadoEm.Format("02/01/2006 15:04"),
					c.DisplayName(),
					c.Texto,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Data", "Nome", "Comentário"}, rows))
			fmt.Fprintf(out, "Página %d de %d (%d comentários)\n",
				thread.Pagina(), thread.TotalPaginas(), thread.Total())
			return nil
		},
	}

	cmd.Flags().IntVar(&pagina, "pagina", 1, "página a exibir")

	return cmd
}

func newCommentCommand(ctx *commandContext) *cobra.Command {
	var nome string
	var texto string

	cmd := &cobra.Command{
		Use:   "comment <slug>",
		Short: "Publica um comentário em um memorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			thread := a.CommentThread(args[0])
			if err := thread.Submit(cmd.Context(), nome, texto); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Comentário publicado (%d no total)", thread.Total()))
			return nil
		},
	}

	cmd.Flags().StringVar(&nome, "nome", "", "nome do autor (vazio publica como anônimo)")
	cmd.Flags().StringVar(&texto, "texto", "", "texto do comentário")
	_ = cmd.MarkFlagRequired("texto")

	return cmd
}
