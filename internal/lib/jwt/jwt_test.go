package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "future exp",
			token: signed(t, jwtlib.MapClaims{"exp": float64(now.Add(time.Hour).Unix())}),
			want:  false,
		},
		{
			name:  "past exp",
			token: signed(t, jwtlib.MapClaims{"exp": float64(now.Add(-time.Hour).Unix())}),
			want:  true,
		},
		{
			name:  "no exp claim",
			token: signed(t, jwtlib.MapClaims{"sub": "operator"}),
			want:  false,
		},
		{
			name:  "opaque token",
			token: "not-a-jwt-at-all",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expired(tt.token, now))
		})
	}
}
