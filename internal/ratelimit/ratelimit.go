// Package ratelimit counts requests in fixed windows.
package ratelimit

import (
	"context"
	"time"
)

// Rule is a named budget of Limit hits per Window.
type Rule struct {
	Name    string
	Limit   int
	Window  time.Duration
	Message string
}

var (
	Login = Rule{
		Name:    "login",
		Limit:   10,
		Window:  15 * time.Minute,
		Message: "Demasiados intentos de inicio de sesión, intente de nuevo más tarde.",
	}
	Register = Rule{
		Name:    "register",
		Limit:   20,
		Window:  15 * time.Minute,
		Message: "Demasiados registros desde esta IP, intente de nuevo más tarde.",
	}
	CreateRecord = Rule{
		Name:    "create_record",
		Limit:   10,
		Window:  time.Minute,
		Message: "Demasiados registros creados, espere un momento.",
	}
	General = Rule{
		Name:    "general",
		Limit:   100,
		Window:  15 * time.Minute,
		Message: "Demasiadas solicitudes, intente de nuevo más tarde.",
	}
)

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	// Allow records one hit for key under rule.
	Allow(ctx context.Context, rule Rule, key string) (Result, error)
}

func bucketKey(rule Rule, key string) string {
	return "ratelimit:" + rule.Name + ":" + key
}

func result(rule Rule, count int64, ttl time.Duration) Result {
	remaining := rule.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	r := Result{Allowed: count <= int64(rule.Limit), Remaining: remaining}
	if !r.Allowed {
		r.RetryAfter = ttl
	}
	return r
}
