package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codecloak/internal/config"
	"github.com/dshills/codecloak/internal/redact"
	"github.com/dshills/codecloak/internal/service"
	"github.com/dshills/codecloak/internal/store"
)

func newTestServer(t *testing.T) (*Server, *service.Service) {
	t.Helper()
	st := store.NewMemoryStore(0)
	t.Cleanup(func() { st.Close() })
	svc := service.New(config.Default(), st)
	return New(svc, "test"), svc
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok", "version": "test"}, decode(t, rec))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestCloakDecloak_RoundTrip(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/cloak", CloakRequest{
		Text:       `const userName = "John";`,
		LanguageID: "javascript",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cloaked service.CloakOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cloaked))
	assert.Equal(t, `const uN = "s1";`, cloaked.Transformed)
	assert.NotEmpty(t, cloaked.ContextID)
	assert.Equal(t, 1, cloaked.Stats.Masked)

	rec = do(t, s, http.MethodPost, "/v1/decloak", DecloakRequest{Text: cloaked.Transformed})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var restored service.DecloakOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restored))
	assert.Equal(t, `const userName = "John";`, restored.Restored)
	assert.Equal(t, cloaked.ContextID, restored.ContextID)
	assert.True(t, restored.Exact)
}

func TestCloak_PreserveHooksFalse(t *testing.T) {
	s, _ := newTestServer(t)
	hooks := false

	rec := do(t, s, http.MethodPost, "/v1/cloak", CloakRequest{
		Text:                   "useEffect(load)",
		LanguageID:             "typescriptreact",
		PreserveFrameworkHooks: &hooks,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uE(l)", decode(t, rec)["transformed"])
}

func TestCloak_BadRequest(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/cloak", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")

	rec = do(t, s, http.MethodPost, "/v1/cloak", CloakRequest{Text: "x", StringFormat: "rot13"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "stringFormat")

	rec = do(t, s, http.MethodPost, "/v1/cloak", CloakRequest{Text: "x=1", Path: ".env"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecloak_NoContext(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/decloak", DecloakRequest{Text: "uN"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, NoContextMessage, decode(t, rec)["error"])
}

func TestDecloak_SuppliedContext(t *testing.T) {
	s, _ := newTestServer(t)

	body := map[string]any{
		"text": "return uN;",
		"context": map[string]any{
			"identifierMap": map[string]string{"uN": "userName"},
			"stringMap":     map[string]string{},
			"languageId":    "javascript",
		},
	}
	rec := do(t, s, http.MethodPost, "/v1/decloak", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "return userName;", decode(t, rec)["restored"])
}

func TestContextEndpoints(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/context", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/v1/cloak", CloakRequest{Text: "let total = 1;"})
	require.Equal(t, http.StatusOK, rec.Code)
	contextID := decode(t, rec)["contextId"]

	rec = do(t, s, http.MethodGet, "/v1/context", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, contextID, env["id"])
	assert.Equal(t, map[string]any{"t": "total"}, env["context"].(map[string]any)["identifierMap"])

	rec = do(t, s, http.MethodGet, "/v1/context/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)
	assert.Equal(t, true, stats["present"])
	assert.Equal(t, "memory", stats["backend"])

	rec = do(t, s, http.MethodDelete, "/v1/context", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/v1/context", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListKeywords(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/keywords/rb", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "ruby", out["language"])
	assert.Equal(t, "Ruby", out["label"])
	groups := out["groups"].([]any)
	require.NotEmpty(t, groups)
	assert.Equal(t, "Keywords", groups[0].(map[string]any)["category"])

	rec = do(t, s, http.MethodGet, "/v1/keywords/cobol", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddKeyword(t *testing.T) {
	s, svc := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/keywords/javascript", AddKeywordRequest{Name: "orderTotal"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, decode(t, rec)["added"])
	assert.Equal(t, []string{"orderTotal"}, svc.Config().KeywordsAdd["javascript"])

	rec = do(t, s, http.MethodPost, "/v1/keywords/javascript", AddKeywordRequest{Name: "orderTotal"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["added"])

	rec = do(t, s, http.MethodPost, "/v1/cloak", CloakRequest{Text: "orderTotal(x)", LanguageID: "javascript"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "orderTotal(x)", decode(t, rec)["transformed"])

	rec = do(t, s, http.MethodPost, "/v1/keywords/javascript", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        service.NewValidationError("stringFormat", "unknown"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "validation error on field 'stringFormat': unknown",
		},
		{
			name:       "missing context maps to 404",
			err:        fmt.Errorf("loading: %w", store.ErrNoContext),
			expectCode: http.StatusNotFound,
			expectMsg:  NoContextMessage,
		},
		{
			name:       "redacted path maps to 400",
			err:        fmt.Errorf(".env: %w", redact.ErrPathRedacted),
			expectCode: http.StatusBadRequest,
			expectMsg:  ".env: file excluded by redaction path policy",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("disk on fire"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.expectCode, code)
			assert.Equal(t, tt.expectMsg, msg)
		})
	}
}
