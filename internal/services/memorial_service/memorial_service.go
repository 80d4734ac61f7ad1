package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/lib/logger/sl"
	"eterno_memorial/internal/lib/slug"
	"eterno_memorial/internal/repository"
	media "eterno_memorial/internal/services/media_service"
)

var corPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// FormInput is one create/edit submission. Existing gallery entries arrive
// as URLs (kept as-is), new selections as files to ingest. A nil FotoMain
// on edit keeps the current primary photo.
type FormInput struct {
	Nome         string
	Biografia    string
	Slug         string
	CorPrincipal string

	FotoMain      media.File
	FotoMainURL   string
	GaleriaFotos  []string
	GaleriaVideos []string
	NovasFotos    []media.File
	NovosVideos   []media.File

	DataNascimento *string
	DataMorte      *string
	CausaMorte     *string
}

// MemorialService orchestrates create/edit submissions: slug naming, media
// ingestion and the repository call. The slug is chosen once at creation
// and never touched by an edit.
type MemorialService struct {
	log   *slog.Logger
	repo  repository.MemorialRepository
	media *media.MediaService
}

func NewMemorialService(log *slog.Logger, repo repository.MemorialRepository, mediaSvc *media.MediaService) *MemorialService {
	return &MemorialService{
		log:   log,
		repo:  repo,
		media: mediaSvc,
	}
}

func (s *MemorialService) Create(ctx context.Context, input FormInput) (models.Memorial, error) {
	const op = "memorial_service.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("nome", input.Nome),
	)

	if err := validateInput(input); err != nil {
		log.Warn("invalid form input", sl.Err(err))
		return models.Memorial{}, err
	}

	if input.Slug == "" {
		input.Slug = slug.Generate(input.Nome)
	}

	log.Info("creating memorial", slog.String("slug", input.Slug))

	payload, err := s.assemble(ctx, input)
	if err != nil {
		log.Warn("media ingestion failed", sl.Err(err))
		return models.Memorial{}, err
	}

	memorial, err := s.repo.CreateMemorial(ctx, payload)
	if err != nil {
		log.Error("failed to create memorial", sl.Err(err))
		return models.Memorial{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("memorial created", slog.String("id", memorial.ID))
	return memorial, nil
}

func (s *MemorialService) Update(ctx context.Context, memorialSlug string, input FormInput) (models.Memorial, error) {
	const op = "memorial_service.Update"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", memorialSlug),
	)

	if err := validateInput(input); err != nil {
		log.Warn("invalid form input", sl.Err(err))
		return models.Memorial{}, err
	}

	// the slug is frozen at creation; edits address it but never change it
	input.Slug = memorialSlug

	log.Info("updating memorial")

	payload, err := s.assemble(ctx, input)
	if err != nil {
		log.Warn("media ingestion failed", sl.Err(err))
		return models.Memorial{}, err
	}

	memorial, err := s.repo.UpdateMemorial(ctx, memorialSlug, payload)
	if err != nil {
		log.Error("failed to update memorial", sl.Err(err))
		return models.Memorial{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("memorial updated")
	return memorial, nil
}

func (s *MemorialService) Delete(ctx context.Context, memorialSlug string) error {
	const op = "memorial_service.Delete"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", memorialSlug),
	)

	log.Info("deleting memorial")

	if err := s.repo.DeleteMemorial(ctx, memorialSlug); err != nil {
		log.Error("failed to delete memorial", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("memorial deleted")
	return nil
}

// assemble ingests every newly selected file and merges the results with
// the entries kept from a previous edit. Any ingestion failure aborts the
// submission with the aggregated message.
func (s *MemorialService) assemble(ctx context.Context, input FormInput) (repository.MemorialInput, error) {
	fotoMain := input.FotoMainURL
	if input.FotoMain != nil {
		payload, err := s.media.IngestOne(ctx, input.FotoMain, models.MediaTypePhoto)
		if err != nil {
			return repository.MemorialInput{}, err
		}
		fotoMain = payload
	}

	galleries, err := s.media.IngestGalleries(ctx, input.NovasFotos, input.NovosVideos)
	if err != nil {
		return repository.MemorialInput{}, err
	}
	if len(galleries.Errors) > 0 {
		return repository.MemorialInput{}, galleries.Errors
	}

	return repository.MemorialInput{
		Nome:           input.Nome,
		Biografia:      input.Biografia,
		Slug:           input.Slug,
		FotoMainURL:    fotoMain,
		CorPrincipal:   input.CorPrincipal,
		GaleriaFotos:   append(append([]string{}, input.GaleriaFotos...), galleries.Fotos...),
		GaleriaVideos:  append(append([]string{}, input.GaleriaVideos...), galleries.Videos...),
		DataNascimento: input.DataNascimento,
		DataMorte:      input.DataMorte,
		CausaMorte:     input.CausaMorte,
	}, nil
}

func validateInput(input FormInput) error {
	if strings.TrimSpace(input.Nome) == "" {
		return fmt.Errorf("nome is required")
	}
	if strings.TrimSpace(input.Biografia) == "" {
		return fmt.Errorf("biografia is required")
	}
	if input.CorPrincipal != "" && !corPattern.MatchString(input.CorPrincipal) {
		return fmt.Errorf("corPrincipal must be a hex color like #9b8b8b")
	}
	if input.CausaMorte != nil && len([]rune(*input.CausaMorte)) > models.MaxCausaMorteLen {
		return fmt.Errorf("causaMorte must be %d characters or less", models.MaxCausaMorteLen)
	}
	return nil
}
