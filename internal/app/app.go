package app

import (
	"fmt"
	"log/slog"

	"eterno_memorial/internal/config"
	"eterno_memorial/internal/services/auth"
	comments "eterno_memorial/internal/services/comment_service"
	media "eterno_memorial/internal/services/media_service"
	memorials "eterno_memorial/internal/services/memorial_service"
	storageredis "eterno_memorial/internal/storage/redis"
	"eterno_memorial/internal/storage/session"
	transporthttp "eterno_memorial/internal/transport/http"
)

// App wires the backend client, session store and services together
// from a loaded config. Close releases the redis connection when that
// backend is selected.
type App struct {
	Log       *slog.Logger
	Repo      *transporthttp.Client
	Auth      *auth.Auth
	Memorials *memorials.MemorialService
	Media     *media.MediaService

	cfg   *config.Config
	redis *storageredis.Client
}

func New(log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	a := &App{Log: log, cfg: cfg}

	var sess session.Store
	switch cfg.Session.Backend {
	case "redis":
		a.redis = storageredis.NewClient(cfg.Session.Redis)
		sess = session.NewRedis(a.redis, cfg.Session.TTL)
	case "memory", "":
		sess = session.NewMemory()
	default:
		return nil, fmt.Errorf("%s: unknown session backend %q", op, cfg.Session.Backend)
	}

	a.Repo = transporthttp.NewClient(log, cfg.API, cfg.Cache, sess)
	a.Auth = auth.New(log, a.Repo, sess)
	a.Media = media.NewMediaService(log, cfg.Media)
	a.Memorials = memorials.NewMemorialService(log, a.Repo, a.Media)

	return a, nil
}

// CommentThread opens a paginated comment view over one memorial.
func (a *App) CommentThread(slug string) *comments.CommentThread {
	return comments.NewCommentThread(a.Log, a.Repo, slug, a.cfg.Comments.PerPage)
}

func (a *App) Close() error {
	if a.redis != nil {
		a.redis.Close()
	}
	return nil
}
