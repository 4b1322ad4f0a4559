package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/prepshare/prepshare/internal/common"
)

type memMetadata struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemMetadata() *memMetadata {
	return &memMetadata{data: make(map[string][]byte)}
}

func (m *memMetadata) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memMetadata) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memMetadata) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func fixedNow() time.Time {
	return time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
}

func newProvider(t *testing.T) (*TokenProvider, *memMetadata) {
	t.Helper()
	meta := newMemMetadata()
	p := NewTokenProvider(meta)
	p.now = fixedNow
	return p, meta
}

func TestSignIn_DerivesPrincipalFromClaims(t *testing.T) {
	p, meta := newProvider(t)
	raw := signedToken(t, jwt.MapClaims{
		"user_id": "U1",
		"exp":     fixedNow().Add(time.Hour).Unix(),
	})

	principal, err := p.SignIn(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "U1", principal.UID())

	tok, err := principal.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, raw, tok)

	stored, _ := meta.Get(context.Background(), sessionTokenKey)
	require.Equal(t, []byte(raw), stored, "session must be persisted")

	require.NotNil(t, p.Current())
}

func TestSignIn_FallsBackToSubjectClaim(t *testing.T) {
	p, _ := newProvider(t)
	raw := signedToken(t, jwt.MapClaims{
		"sub": "subject-7",
		"exp": fixedNow().Add(time.Hour).Unix(),
	})

	principal, err := p.SignIn(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "subject-7", principal.UID())
}

func TestSignIn_RejectsBadTokens(t *testing.T) {
	p, _ := newProvider(t)

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{
			name: "garbage",
			raw:  "not-a-jwt",
			want: common.ErrInvalidToken,
		},
		{
			name: "no subject",
			raw:  signedToken(t, jwt.MapClaims{"exp": fixedNow().Add(time.Hour).Unix()}),
			want: common.ErrInvalidToken,
		},
		{
			name: "no expiry",
			raw:  signedToken(t, jwt.MapClaims{"user_id": "U1"}),
			want: common.ErrInvalidToken,
		},
		{
			name: "already expired",
			raw:  signedToken(t, jwt.MapClaims{"user_id": "U1", "exp": fixedNow().Add(-time.Minute).Unix()}),
			want: common.ErrTokenExpired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.SignIn(context.Background(), tc.raw)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, p.Current())
		})
	}
}

func TestPrincipal_TokenRefusesAfterExpiry(t *testing.T) {
	p, _ := newProvider(t)
	raw := signedToken(t, jwt.MapClaims{
		"user_id": "U1",
		"exp":     fixedNow().Add(time.Minute).Unix(),
	})

	principal, err := p.SignIn(context.Background(), raw)
	require.NoError(t, err)

	// Advance the clock past the expiry; the credential is no longer issued.
	p.now = func() time.Time { return fixedNow().Add(2 * time.Minute) }

	_, err = principal.Token(context.Background())
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestSignOut_ClearsPersistedSessionAndNotifies(t *testing.T) {
	p, meta := newProvider(t)
	raw := signedToken(t, jwt.MapClaims{
		"user_id": "U1",
		"exp":     fixedNow().Add(time.Hour).Unix(),
	})

	var transitions []Principal
	p.Subscribe(func(pr Principal) { transitions = append(transitions, pr) })

	_, err := p.SignIn(context.Background(), raw)
	require.NoError(t, err)
	require.NoError(t, p.SignOut(context.Background()))

	require.Nil(t, p.Current())
	stored, _ := meta.Get(context.Background(), sessionTokenKey)
	require.Nil(t, stored)

	require.Len(t, transitions, 2)
	require.NotNil(t, transitions[0])
	require.Nil(t, transitions[1])
}

func TestRestore_LoadsValidSession(t *testing.T) {
	p, meta := newProvider(t)
	raw := signedToken(t, jwt.MapClaims{
		"user_id": "U1",
		"exp":     fixedNow().Add(time.Hour).Unix(),
	})
	require.NoError(t, meta.Set(context.Background(), sessionTokenKey, []byte(raw)))

	require.NoError(t, p.Restore(context.Background()))
	require.NotNil(t, p.Current())
	require.Equal(t, "U1", p.Current().UID())
}

func TestRestore_DropsExpiredStoredToken(t *testing.T) {
	p, meta := newProvider(t)
	raw := signedToken(t, jwt.MapClaims{
		"user_id": "U1",
		"exp":     fixedNow().Add(-time.Hour).Unix(),
	})
	require.NoError(t, meta.Set(context.Background(), sessionTokenKey, []byte(raw)))

	require.NoError(t, p.Restore(context.Background()))
	require.Nil(t, p.Current(), "expired session stays signed out")

	stored, _ := meta.Get(context.Background(), sessionTokenKey)
	require.Nil(t, stored, "stale token is removed")
}

func TestRestore_NoStoredSessionIsFine(t *testing.T) {
	p, _ := newProvider(t)
	require.NoError(t, p.Restore(context.Background()))
	require.Nil(t, p.Current())
}
