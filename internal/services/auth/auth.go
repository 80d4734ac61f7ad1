package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eterno_memorial/internal/domain/models"
	libjwt "eterno_memorial/internal/lib/jwt"
	"eterno_memorial/internal/lib/logger/sl"
	"eterno_memorial/internal/repository"
	"eterno_memorial/internal/storage/session"
)

// Auth exchanges operator credentials for a bearer token and keeps it in the
// injected session store. Password verification happens in the backend; this
// service only moves the token around.
type Auth struct {
	log     *slog.Logger
	repo    repository.MemorialRepository
	session session.Store
	now     func() time.Time
}

func New(log *slog.Logger, repo repository.MemorialRepository, sess session.Store) *Auth {
	return &Auth{
		log:     log,
		repo:    repo,
		session: sess,
		now:     time.Now,
	}
}

func (a *Auth) Login(ctx context.Context, email, senha string) (models.User, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login operator")

	result, err := a.repo.Login(ctx, email, senha)
	if err != nil {
		log.Warn("login rejected", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := a.session.SetToken(ctx, result.Token); err != nil {
		log.Error("failed to store session token", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("operator logged in")
	return result.User, nil
}

func (a *Auth) Logout(ctx context.Context) error {
	const op = "auth.Logout"

	if err := a.session.Clear(ctx); err != nil {
		a.log.Error("failed to clear session", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Info("operator logged out", slog.String("op", op))
	return nil
}

// IsAuthenticated reports whether a usable token is stored. A token that
// parses as a JWT with a past exp claim counts as unusable; opaque tokens
// are trusted until the backend rejects them.
func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	token, err := a.session.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	return !libjwt.Expired(token, a.now())
}
