package fetch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/fetch"
)

func TestRequest_HeadersParamsAndBody(t *testing.T) {
	var got struct {
		method, path, query, header string
		body                        map[string]any
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.header = r.Header.Get("X-Token")
		_ = json.NewDecoder(r.Body).Decode(&got.body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	out, err := fetch.New(srv.URL).
		Post("v1", "users").
		Header("X-Token", "abc").
		Param("dry_run", "1").
		Body(map[string]any{"name": "Alice"}).
		JSON(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/v1/users", got.path)
	assert.Equal(t, "dry_run=1", got.query)
	assert.Equal(t, "abc", got.header)
	assert.Equal(t, map[string]any{"name": "Alice"}, got.body)
	assert.Equal(t, map[string]any{"ok": true}, out)
}

func TestRequest_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	out, err := fetch.New(srv.URL).Get("health").Retry(5).JSON(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, out)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRequest_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fetch.New(srv.URL).Get().JSON(context.Background())
	require.ErrorIs(t, err, fetch.ErrStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRequest_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetch.New(srv.URL).Get("missing").Retry(3).JSON(context.Background())
	require.ErrorIs(t, err, fetch.ErrStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRequest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := fetch.New(srv.URL).Get().Timeout(30 * time.Millisecond).JSON(context.Background())
	require.Error(t, err)
}

func TestJSONChecked_ValidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Alice","age":30}`))
	}))
	defer srv.Close()

	user := shapecheck.Record().
		Field("name", shapecheck.Text().Any()).
		Field("age", shapecheck.Numeric().Any()).
		Build()

	out, err := fetch.New(srv.URL).Get("user").JSONChecked(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Alice", "age": 30.0}, out)
}

func TestJSONChecked_InvalidResponseSurfacesIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Alice","age":"old"}`))
	}))
	defer srv.Close()

	user := shapecheck.Record().
		Field("name", shapecheck.Text().Any()).
		Field("age", shapecheck.Numeric().Any()).
		Build()

	_, err := fetch.New(srv.URL).Get("user").JSONChecked(context.Background(), user)
	se, ok := shapecheck.AsSchemaError(err)
	require.True(t, ok, "expected *shapecheck.SchemaError, got %v", err)
	require.Len(t, se.Issues, 1)
	assert.Equal(t, "Expected number", se.Issues[0].Message)
	assert.Equal(t, "/age", se.Issues[0].Path.String())
}
