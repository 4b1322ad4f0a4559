package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prepshare/prepshare/internal/client/repositories/metadata"
	"github.com/prepshare/prepshare/internal/common"
)

const sessionTokenKey = "session_token"

// TokenProvider is a Provider backed by a pasted identity-provider ID token
// (a JWT). The principal's uid and expiry are read from the token's claims;
// the signature is the backend's concern, so the client parses without
// verifying. The active token is persisted in the metadata repository so a
// restart within its lifetime stays signed in.
type TokenProvider struct {
	meta metadata.Repository
	now  func() time.Time

	mu      sync.Mutex
	current *tokenPrincipal
	subs    map[int]func(Principal)
	nextID  int
}

// NewTokenProvider builds a provider persisting sessions in meta.
func NewTokenProvider(meta metadata.Repository) *TokenProvider {
	return &TokenProvider{
		meta: meta,
		now:  time.Now,
		subs: make(map[int]func(Principal)),
	}
}

// Restore loads a previously persisted session. An absent, malformed or
// expired stored token leaves the provider signed out without error.
func (p *TokenProvider) Restore(ctx context.Context) error {
	raw, err := p.meta.Get(ctx, sessionTokenKey)
	if err != nil {
		return fmt.Errorf("loading stored session: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	principal, err := p.parse(string(raw))
	if err != nil {
		// Stale or damaged token: drop it quietly.
		_ = p.meta.Delete(ctx, sessionTokenKey)
		return nil
	}
	p.setCurrent(principal)
	return nil
}

// SignIn accepts a raw ID token, validates its claims, persists it and
// publishes the new principal. Returns common.ErrTokenExpired for a token
// already past its expiry and common.ErrInvalidToken for malformed input.
func (p *TokenProvider) SignIn(ctx context.Context, rawToken string) (Principal, error) {
	principal, err := p.parse(rawToken)
	if err != nil {
		return nil, err
	}
	if err := p.meta.Set(ctx, sessionTokenKey, []byte(rawToken)); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	p.setCurrent(principal)
	return principal, nil
}

// SignOut clears the persisted session and publishes the nil principal.
func (p *TokenProvider) SignOut(ctx context.Context) error {
	if err := p.meta.Delete(ctx, sessionTokenKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	p.setCurrent(nil)
	return nil
}

func (p *TokenProvider) parse(rawToken string) (*tokenPrincipal, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	uid := ""
	// Firebase-style tokens carry the uid in user_id; fall back to sub.
	if v, ok := claims["user_id"].(string); ok {
		uid = v
	}
	if uid == "" {
		sub, _ := claims.GetSubject()
		uid = sub
	}
	if uid == "" {
		return nil, fmt.Errorf("%w: no subject claim", common.ErrInvalidToken)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: no expiry claim", common.ErrInvalidToken)
	}
	if !exp.Time.After(p.now()) {
		return nil, common.ErrTokenExpired
	}

	return &tokenPrincipal{uid: uid, raw: rawToken, exp: exp.Time, now: p.now}, nil
}

func (p *TokenProvider) setCurrent(principal *tokenPrincipal) {
	p.mu.Lock()
	p.current = principal
	fns := make([]func(Principal), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	var pub Principal
	if principal != nil {
		pub = principal
	}
	for _, fn := range fns {
		fn(pub)
	}
}

func (p *TokenProvider) Current() Principal {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	return p.current
}

func (p *TokenProvider) Subscribe(fn func(Principal)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// tokenPrincipal hands out the raw token as the per-call credential, failing
// once the token's expiry has passed.
type tokenPrincipal struct {
	uid string
	raw string
	exp time.Time
	now func() time.Time
}

func (t *tokenPrincipal) UID() string { return t.uid }

func (t *tokenPrincipal) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.exp.After(t.now()) {
		return "", common.ErrTokenExpired
	}
	return t.raw, nil
}
