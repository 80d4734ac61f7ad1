package session

import "context"

// Store holds the operator's bearer token between requests. It replaces the
// ambient token slot the frontend kept in local storage: every component
// that makes authenticated calls receives a Store explicitly.
//
// Token returns storage.ErrNoToken when no session is active.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
