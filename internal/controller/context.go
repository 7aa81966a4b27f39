package controller

import (
	"context"

	"service-booking-api/internal/model"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	clientKey
)

// WithSession attaches the caller's live session.
func WithSession(ctx context.Context, s *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func SessionFrom(ctx context.Context) *model.Session {
	s, _ := ctx.Value(sessionKey).(*model.Session)
	return s
}

// WithClient names an unauthenticated caller (a browser tab or a peer).
func WithClient(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientKey, id)
}

// Audience is the notice feed of the caller: its client id when it sent
// one, so a tab keeps its feed across sign-in, else its session.
func Audience(ctx context.Context) string {
	if id, _ := ctx.Value(clientKey).(string); id != "" {
		return "client:" + id
	}
	if s := SessionFrom(ctx); s != nil {
		return "session:" + s.ID
	}
	return ""
}
