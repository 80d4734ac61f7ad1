package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"eterno_memorial/internal/app"
	media "eterno_memorial/internal/services/media_service"
	memorials "eterno_memorial/internal/services/memorial_service"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista os memoriais publicados",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			items, err := a.Repo.ListMemorials(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, m := range items {
				rows = append(rows, []string{
					m.Slug,
					m.Nome,
					strconv.Itoa(len(m.GaleriaFotos)),
					strconv.Itoa(len(m.GaleriaVideos)),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Slug", "Nome", "Fotos", "Vídeos"}, rows,
			))
			return nil
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Mostra um memorial",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.New(color.Bold).Sprint(m.Nome))
			fmt.Fprintf(out, "Slug:       %s\n", m.Slug)
			if m.DataNascimento != nil || m.DataMorte != nil {
				fmt.Fprintf(out, "Período:    %s - %s\n", strOr(m.DataNascimento, "?"), strOr(m.DataMorte, "?"))
			}
			if m.CausaMorte != nil {
				fmt.Fprintf(out, "Causa:      %s\n", *m.CausaMorte)
			}
			if m.CorPrincipal != "" {
				fmt.Fprintf(out, "Cor:        %s\n", m.CorPrincipal)
			}
			fmt.Fprintf(out, "Galeria:    %d foto(s), %d vídeo(s)\n", len(m.GaleriaFotos), len(m.GaleriaVideos))
			fmt.Fprintln(out)
			fmt.Fprintln(out, m.Biografia)
			return nil
		},
	}
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

type formFlags struct {
	nome           string
	biografia      string
	slug           string
	cor            string
	dataNascimento string
	dataMorte      string
	causaMorte     string
	fotoMain       string
	fotos          []string
	videos         []string
}

func (f *formFlags) register(cmd *cobra.Command, withSlug bool) {
	cmd.Flags().StringVar(&f.nome, "nome", "", "nome da pessoa homenageada")
	cmd.Flags().StringVar(&f.biografia, "biografia", "", "texto da biografia")
	if withSlug {
		cmd.Flags().StringVar(&f.slug, "slug", "", "identificador na URL (gerado do nome se omitido)")
	}
	cmd.Flags().StringVar(&f.cor, "cor", "", "cor principal da página (#rrggbb)")
	cmd.Flags().StringVar(&f.dataNascimento, "data-nascimento", "", "data de nascimento")
	cmd.Flags().StringVar(&f.dataMorte, "data-morte", "", "data de falecimento")
	cmd.Flags().StringVar(&f.causaMorte, "causa-morte", "", "causa do falecimento")
	cmd.Flags().StringVar(&f.fotoMain, "foto-main", "", "arquivo da foto de capa")
	cmd.Flags().StringArrayVar(&f.fotos, "foto", nil, "arquivo de foto para a galeria (repetível)")
	cmd.Flags().StringArrayVar(&f.videos, "video", nil, "arquivo de vídeo para a galeria (repetível)")
}

func (f *formFlags) build() (memorials.FormInput, error) {
	input := memorials.FormInput{
		Nome:         f.nome,
		Biografia:    f.biografia,
		Slug:         f.slug,
		CorPrincipal: f.cor,
	}

	if f.dataNascimento != "" {
		input.DataNascimento = &f.dataNascimento
	}
	if f.dataMorte != "" {
		input.DataMorte = &f.dataMorte
	}
	if f.causaMorte != "" {
		input.CausaMorte = &f.causaMorte
	}

	if f.fotoMain != "" {
		file, err := media.NewOSFile(f.fotoMain)
		if err != nil {
			return input, err
		}
		input.FotoMain = file
	}

	for _, path := range f.fotos {
		file, err := media.NewOSFile(path)
		if err != nil {
			return input, err
		}
		input.NovasFotos = append(input.NovasFotos, file)
	}
	for _, path := range f.videos {
		file, err := media.NewOSFile(path)
		if err != nil {
			return input, err
		}
		input.NovosVideos = append(input.NovosVideos, file)
	}

	return input, nil
}

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publica um novo memorial",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			input, err := flags.build()
			if err != nil {
				return err
			}

			m, err := a.Memorials.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Memorial criado: %s", m.Slug))
			return nil
		},
	}

	flags.register(cmd, true)
	_ = cmd.MarkFlagRequired("nome")
	_ = cmd.MarkFlagRequired("biografia")

	return cmd
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "edit <slug>",
		Short: "Atualiza um memorial existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			input, err := editInput(cmd.Context(), a, args[0], &flags)
			if err != nil {
				return err
			}

			m, err := a.Memorials.Update(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Memorial atualizado: %s", m.Slug))
			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}

// editInput starts from the memorial as published, so flags left out keep
// their current value and uploaded files append to the existing galleries.
func editInput(ctx context.Context, a *app.App, slug string, flags *formFlags) (memorials.FormInput, error) {
	current, err := a.Repo.GetMemorialBySlug(ctx, slug)
	if err != nil {
		return memorials.FormInput{}, err
	}

	input, err := flags.build()
	if err != nil {
		return memorials.FormInput{}, err
	}

	if input.Nome == "" {
		input.Nome = current.Nome
	}
	if input.Biografia == "" {
		input.Biografia = current.Biografia
	}
	if input.CorPrincipal == "" {
		input.CorPrincipal = current.CorPrincipal
	}
	if input.DataNascimento == nil {
		input.DataNascimento = current.DataNascimento
	}
	if input.DataMorte == nil {
		input.DataMorte = current.DataMorte
	}
	if input.CausaMorte == nil {
		input.CausaMorte = current.CausaMorte
	}

	input.FotoMainURL = current.FotoMainURL
	input.GaleriaFotos = current.GaleriaFotos
	input.GaleriaVideos = current.GaleriaVideos

	return input, nil
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Remove um memorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("remoção é definitiva; repita com --yes para confirmar")
			}

			a, err := ctx.ensureApp()
			if err != nil {
				return err
			}

			if err := a.Memorials.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Memorial removido: %s", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirma a remoção")

	return cmd
}
