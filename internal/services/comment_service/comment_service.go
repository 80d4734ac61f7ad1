package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/lib/logger/sl"
	"eterno_memorial/internal/repository"
)

// State is the visible condition of the comment panel.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// CommentThread owns the pagination state of one memorial's comment thread.
// It is the only writer of that state; the memorial entity itself is never
// touched. Every fetch carries a sequence number and a response is applied
// only when it belongs to the most recently issued request, so rapid
// page-clicking cannot let a stale page overwrite a newer one.
type CommentThread struct {
	log       *slog.Logger
	repo      repository.MemorialRepository
	slug      string
	porPagina int

	mu           sync.Mutex
	seq          uint64
	state        State
	comentarios  []models.Comentario
	pagina       int
	totalPaginas int
	total        int
}

func NewCommentThread(log *slog.Logger, repo repository.MemorialRepository, slug string, porPagina int) *CommentThread {
	if porPagina < 1 {
		porPagina = 5
	}
	return &CommentThread{
		log:          log,
		repo:         repo,
		slug:         slug,
		porPagina:    porPagina,
		state:        StateIdle,
		pagina:       1,
		totalPaginas: 1,
	}
}

// Load fetches one page of the thread. Requests for pages outside
// [1, totalPaginas] are not issued and the current page is kept; page 1 is
// always issuable so the first load of an empty thread works.
func (t *CommentThread) Load(ctx context.Context, pagina int) error {
	const op = "comment_service.Load"

	log := t.log.With(
		slog.String("op", op),
		slog.String("slug", t.slug),
		slog.Int("pagina", pagina),
	)

	t.mu.Lock()
	if pagina < 1 || (pagina != 1 && pagina > t.totalPaginas) {
		t.mu.Unlock()
		log.Debug("page out of range, not issuing request")
		return nil
	}
	t.seq++
	seq := t.seq
	t.state = StateLoading
	t.mu.Unlock()

	log.Info("loading comments")

	page, err := t.repo.ListComments(ctx, t.slug, pagina, t.porPagina)

	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq {
		// a newer load was issued while this one was in flight
		log.Debug("discarding stale response")
		return nil
	}

	if err != nil {
		log.Error("failed to load comments", sl.Err(err))
		t.state = StateFailed
		t.comentarios = nil
		return fmt.Errorf("%s: %w", op, err)
	}

	t.state = StateLoaded
	t.comentarios = page.Comentarios
	t.pagina = pagina
	t.totalPaginas = page.TotalPaginas
	t.total = page.Total

	log.Info("comments loaded",
		slog.Int("count", len(page.Comentarios)),
		slog.Int("total", page.Total),
	)
	return nil
}

// NextPage and PreviousPage are the clamped pagination buttons.
func (t *CommentThread) NextPage(ctx context.Context) error {
	return t.Load(ctx, t.Pagina()+1)
}

func (t *CommentThread) PreviousPage(ctx context.Context) error {
	return t.Load(ctx, t.Pagina()-1)
}

// Submit publishes a visitor comment. The text must be non-empty after
// trimming; the name is optional and the backend stores it as given. On
// success the thread reloads page 1 so the contributor immediately sees
// their own comment (the backend sorts most-recent-first). The create and
// the reload never run concurrently.
func (t *CommentThread) Submit(ctx context.Context, nome, texto string) error {
	const op = "comment_service.Submit"

	log := t.log.With(
		slog.String("op", op),
		slog.String("slug", t.slug),
	)

	texto = strings.TrimSpace(texto)
	if texto == "" {
		log.Debug("rejected empty comment")
		return models.ErrEmptyComment
	}
	nome = strings.TrimSpace(nome)

	log.Info("submitting comment")

	if _, err := t.repo.CreateComment(ctx, t.slug, nome, texto); err != nil {
		log.Error("failed to submit comment", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comment submitted, reloading first page")

	return t.Load(ctx, 1)
}

func (t *CommentThread) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Comentarios returns the currently visible page, cleared after a failed
// load.
func (t *CommentThread) Comentarios() []models.Comentario {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.comentarios
}

func (t *CommentThread) Pagina() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pagina
}

func (t *CommentThread) TotalPaginas() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalPaginas
}

func (t *CommentThread) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}
