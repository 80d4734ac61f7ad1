package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"eterno_memorial/internal/config"
	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/lib/logger/sl"
	"eterno_memorial/internal/metrics"
)

// File is one user-selected file handle entering the pipeline. ContentType
// is the declared MIME type; nothing here sniffs actual content.
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// MediaService validates and encodes batches of user-selected files into
// inline data-URI payloads ready to attach to a memorial. It mutates no
// gallery state: the caller appends accepted payloads and surfaces errors.
type MediaService struct {
	log *slog.Logger
	cfg config.MediaConfig
}

func NewMediaService(log *slog.Logger, cfg config.MediaConfig) *MediaService {
	return &MediaService{
		log: log,
		cfg: cfg,
	}
}

// BatchResult carries every outcome of one ingestion batch. Accepted keeps
// input order; Errors holds one entry per rejected or unreadable file.
type BatchResult struct {
	Accepted []string
	Errors   models.IngestErrors
}

// ErrorMessage joins the batch's failures into the single message shown to
// the user, empty when everything was accepted.
func (r BatchResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors.Error()
}

// IngestBatch evaluates every file independently: validation failures do not
// stop the batch, and accepted files are encoded concurrently with each
// result attributed to its originating file. The returned error is non-nil
// only when ctx is cancelled.
func (s *MediaService) IngestBatch(ctx context.Context, files []File, kind models.MediaType) (BatchResult, error) {
	const op = "media_service.IngestBatch"

	log := s.log.With(
		slog.String("op", op),
		slog.String("kind", string(kind)),
		slog.Int("files", len(files)),
	)

	log.Info("ingesting media batch")

	type slot struct {
		payload string
		err     *models.IngestError
	}
	slots := make([]slot, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return BatchResult{}, err
		}

		if ingErr := s.validateFile(file, kind); ingErr != nil {
			slots[i] = slot{err: ingErr}
			continue
		}

		wg.Add(1)
		go func(i int, file File) {
			defer wg.Done()
			payload, err := encode(file)
			if err != nil {
				slots[i] = slot{err: &models.IngestError{
					FileName: file.Name(),
					Reason:   "erro ao ler o arquivo",
				}}
				return
			}
			slots[i] = slot{payload: payload}
		}(i, file)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, filled := range slots {
		if filled.err != nil {
			metrics.IngestedFilesTotal.WithLabelValues(string(kind), "rejected").Inc()
			result.Errors = append(result.Errors, filled.err)
			continue
		}
		metrics.IngestedFilesTotal.WithLabelValues(string(kind), "accepted").Inc()
		result.Accepted = append(result.Accepted, filled.payload)
	}

	if len(result.Errors) > 0 {
		log.Warn("batch finished with rejected files",
			slog.Int("accepted", len(result.Accepted)),
			slog.Int("rejected", len(result.Errors)),
		)
	} else {
		log.Info("batch ingested", slog.Int("accepted", len(result.Accepted)))
	}

	return result, nil
}

// GalleryResult is the outcome of ingesting both of a memorial's galleries
// in one go.
type GalleryResult struct {
	Fotos  []string
	Videos []string
	Errors models.IngestErrors
}

func (r GalleryResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors.Error()
}

// IngestGalleries runs the photo and video batches of one form submission,
// aggregating every rejection across both kinds into a single error list.
func (s *MediaService) IngestGalleries(ctx context.Context, fotos, videos []File) (GalleryResult, error) {
	fotosResult, err := s.IngestBatch(ctx, fotos, models.MediaTypePhoto)
	if err != nil {
		return GalleryResult{}, err
	}

	videosResult, err := s.IngestBatch(ctx, videos, models.MediaTypeVideo)
	if err != nil {
		return GalleryResult{}, err
	}

	result := GalleryResult{
		Fotos:  fotosResult.Accepted,
		Videos: videosResult.Accepted,
	}
	result.Errors = append(result.Errors, fotosResult.Errors...)
	result.Errors = append(result.Errors, videosResult.Errors...)
	return result, nil
}

// IngestOne is the primary-photo variant: same validation, one payload or
// one error.
func (s *MediaService) IngestOne(ctx context.Context, file File, kind models.MediaType) (string, error) {
	const op = "media_service.IngestOne"

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if ingErr := s.validateFile(file, kind); ingErr != nil {
		metrics.IngestedFilesTotal.WithLabelValues(string(kind), "rejected").Inc()
		return "", ingErr
	}

	payload, err := encode(file)
	if err != nil {
		metrics.IngestedFilesTotal.WithLabelValues(string(kind), "rejected").Inc()
		s.log.Error("failed to encode file", slog.String("op", op), sl.Err(err))
		return "", &models.IngestError{FileName: file.Name(), Reason: "erro ao ler o arquivo"}
	}

	metrics.IngestedFilesTotal.WithLabelValues(string(kind), "accepted").Inc()
	return payload, nil
}

func (s *MediaService) validateFile(file File, kind models.MediaType) *models.IngestError {
	contentType := file.ContentType()

	if !strings.HasPrefix(contentType, kind.MIMEPrefix()) {
		reason := "arquivo não é uma imagem"
		if kind == models.MediaTypeVideo {
			reason = "arquivo não é um vídeo"
		}
		return &models.IngestError{FileName: file.Name(), Reason: reason}
	}

	if kind != models.MediaTypeVideo {
		return nil
	}

	allowed := false
	for _, t := range s.cfg.AllowedVideoTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return &models.IngestError{
			FileName: file.Name(),
			Reason: fmt.Sprintf("tipo de vídeo não permitido (permitidos: %s)",
				strings.Join(s.cfg.AllowedVideoTypes, ", ")),
		}
	}

	if file.Size() > s.cfg.MaxVideoSize {
		return &models.IngestError{
			FileName: file.Name(),
			Reason:   fmt.Sprintf("vídeo excede o tamanho máximo de %dMB", s.cfg.MaxVideoSize/(1024*1024)),
		}
	}

	return nil
}

// encode reads the whole file and wraps it as a self-describing data URI,
// the transportable form the backend stores as an opaque string.
func encode(file File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return "data:" + file.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
