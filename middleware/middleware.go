// Package middleware validates JSON request bodies at the net/http boundary.
// On success the checked value is stored in the request context; on failure
// the request is answered with status 400 and an issues payload.
package middleware

import (
	"context"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/shapecheck/shapecheck"
)

// ctxKeyChecked is a typed context key for storing a checked value.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyChecked[T any] struct{}

// ContextWithChecked attaches a checked value to the context.
func ContextWithChecked[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyChecked[T]{}, v)
}

// CheckedFromContext retrieves a checked value from the context.
func CheckedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyChecked[T]{}).(T)
	return v, ok
}

// ErrorPayload shapes issues for JSON responses. Paths are rendered as
// JSON-Pointer-like strings; root issues omit the path entirely.
func ErrorPayload(issues []shapecheck.Issue) map[string]any {
	out := make([]map[string]any, 0, len(issues))
	for _, it := range issues {
		m := map[string]any{"message": it.Message}
		if len(it.Path) > 0 {
			m["path"] = it.Path.String()
		}
		out = append(out, m)
	}
	return map[string]any{"issues": out}
}

// ValidateJSON decodes the request body as JSON, checks it with v, stores the
// result in the request context for next, and on failure responds 400 with
// the issues payload.
func ValidateJSON[T any](v shapecheck.Validator[T], next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "unable to read request body", http.StatusBadRequest)
			return
		}
		data, err := shapecheck.DecodeJSON(body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		res := v.CheckSafe(data)
		if !res.Ok() {
			writeJSON(w, http.StatusBadRequest, ErrorPayload(res.Issues()))
			return
		}
		ctx := ContextWithChecked(r.Context(), res.Value())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
