package graphql

import (
	"context"
	"sync"
)

// RequestSession carries the cart session token of one GraphQL request.
type RequestSession struct {
	mu    sync.Mutex
	token string
	// OnIssue is called once when a token is created for a request that had none.
	OnIssue func(token string)
}

// NewRequestSession wraps the token the client sent, which may be empty.
func NewRequestSession(token string, onIssue func(string)) *RequestSession {
	return &RequestSession{token: token, OnIssue: onIssue}
}

// Token returns the current token, or "".
func (s *RequestSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Ensure returns the token, creating one with newToken when there is none.
func (s *RequestSession) Ensure(newToken func() string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" {
		return s.token
	}
	s.token = newToken()
	if s.OnIssue != nil {
		s.OnIssue(s.token)
	}
	return s.token
}

type sessionKey struct{}

// WithSession attaches s to ctx.
func WithSession(ctx context.Context, s *RequestSession) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the request session, or an empty one.
func SessionFrom(ctx context.Context) *RequestSession {
	if s, ok := ctx.Value(sessionKey{}).(*RequestSession); ok && s != nil {
		return s
	}
	return &RequestSession{}
}
