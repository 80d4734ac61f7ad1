package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	gallery "eterno_memorial/internal/services/gallery_service"
)

func newGalleryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery <slug>",
		Short: "Lista a galeria de um memorial na ordem de navegação",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			m, err := a.Repo.GetMemorialBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			index := gallery.New(m)
			if index.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Galeria vazia")
				return nil
			}

			rows := make([][]string, 0, len(index.Items()))
			for i, item := range index.Items() {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					string(item.Kind),
					strconv.Itoa(item.OriginalIndex + 1),
					truncate(item.URL, 60),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Tipo", "Posição original", "URL"}, rows,
			))
			return nil
		},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
