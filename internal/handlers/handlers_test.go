package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Post("/users", CreateUser)
	r.Get("/users/{userId}", GetUser)
	r.Post("/math/fromai", GetQuizFromAI)
	r.Post("/stories/saveStory", SaveStory)
	return r
}

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)
	return w
}

func TestSaveStory_MissingTitle(t *testing.T) {
	w := do(t, http.MethodPost, "/stories/saveStory", `{"title": "", "content": "x"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title and content are required.")
}

func TestSaveStory_MissingContent(t *testing.T) {
	w := do(t, http.MethodPost, "/stories/saveStory", `{"title": "A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveStory_InvalidBody(t *testing.T) {
	w := do(t, http.MethodPost, "/stories/saveStory", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_MissingFields(t *testing.T) {
	w := do(t, http.MethodPost, "/users", `{"firstName": "Ada"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Fields not valid")
}

func TestGetUser_InvalidID(t *testing.T) {
	w := do(t, http.MethodGet, "/users/not-a-hex-id", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestGetQuizFromAI_EmptyPrompt(t *testing.T) {
	w := do(t, http.MethodPost, "/math/fromai", `{"prompt": ""}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Prompt is required")
}
