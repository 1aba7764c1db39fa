package composer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/lovenotes/pkg/composer"
	"github.com/NethermindEth/lovenotes/pkg/composer/phrasebook"
)

func setupTestComposer(t *testing.T, opts ...func(*composer.ComposerConfig)) *composer.Composer {
	composerConfig := &composer.ComposerConfig{
		Phrasebook:    phrasebook.New(rand.New(rand.NewPCG(11, 11))),
		TextGenerator: echoGenerator(),
		ListenAddr:    "",
	}

	for _, opt := range opts {
		opt(composerConfig)
	}

	c, err := composer.NewComposer(context.Background(), composerConfig)
	require.NoError(t, err)
	return c
}

func postJson(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) composer.Message {
	t.Helper()

	var message composer.Message
	require.NoError(t, json.NewDecoder(w.Body).Decode(&message))
	return message
}

func TestComposerApi_GetRouter(t *testing.T) {
	testComposer := setupTestComposer(t)
	router := testComposer.GetRouter()

	t.Run("GET /", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Template Generator")
		assert.Contains(t, w.Body.String(), "AI Generator")
		assert.Contains(t, w.Body.String(), "Flirt Line")
		assert.NotContains(t, w.Body.String(), "Pin to IPFS")
	})

	t.Run("GET /healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/healthz", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("GET /api/wordbanks", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/wordbanks", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp composer.WordBanksResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, []phrasebook.ContentType{phrasebook.LoveQuote, phrasebook.FlirtLine}, resp.ContentTypes)
		assert.Len(t, resp.Banks, 6)
		assert.Equal(t, []string{"heart", "pulse", "knees", "mind"}, resp.Banks["body_part"])
	})

	t.Run("POST /api/template", func(t *testing.T) {
		w := postJson(t, router, "/api/template", map[string]string{
			"content_type": "Love Quote",
			"adjective":    "radiant",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		message := decodeMessage(t, w)
		assert.Equal(t, composer.GeneratorTemplate, message.Generator)
		assert.Equal(t, phrasebook.LoveQuote, message.ContentType)
		assert.NotContains(t, message.Text, "{")
	})

	t.Run("POST /api/template form", func(t *testing.T) {
		form := url.Values{"content_type": {"flirt_line"}, "noun": {"comet"}}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/template", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, phrasebook.FlirtLine, decodeMessage(t, w).ContentType)
	})

	t.Run("POST /api/template unknown content type", func(t *testing.T) {
		w := postJson(t, router, "/api/template", map[string]string{"content_type": "Limerick"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /api/model", func(t *testing.T) {
		w := postJson(t, router, "/api/model", map[string]any{
			"prompt":     "Write a short poem",
			"max_length": 30,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		message := decodeMessage(t, w)
		assert.Equal(t, composer.GeneratorModel, message.Generator)
		assert.Equal(t, "Write a short poem", message.Prompt)
		assert.Equal(t, "Write a short poem and the stars", message.Text)
	})

	t.Run("POST /api/model max length out of range", func(t *testing.T) {
		for _, maxLength := range []int{29, 101} {
			w := postJson(t, router, "/api/model", map[string]any{
				"prompt":     "hi",
				"max_length": maxLength,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code, "max_length %d", maxLength)
		}
	})

	t.Run("GET /api/messages/:id", func(t *testing.T) {
		created := decodeMessage(t, postJson(t, router, "/api/template", map[string]string{}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/messages/"+created.ID, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		fetched := decodeMessage(t, w)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Text, fetched.Text)
	})

	t.Run("GET /api/messages/:id unknown", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/messages/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, composer.ErrMessageNotFound.Error(), w.Body.String())
	})

	t.Run("POST /api/messages/:id/pin disabled", func(t *testing.T) {
		created := decodeMessage(t, postJson(t, router, "/api/template", map[string]string{}))

		w := postJson(t, router, "/api/messages/"+created.ID+"/pin", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("GET /metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/metrics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "lovenotes_generations_total")
	})
}

func TestComposerApi_ModelError(t *testing.T) {
	testComposer := setupTestComposer(t, func(config *composer.ComposerConfig) {
		config.TextGenerator = &mockTextGenerator{
			generate: func(ctx context.Context, prompt string, maxLength int) (string, error) {
				return "", assert.AnError
			},
		}
	})

	w := postJson(t, testComposer.GetRouter(), "/api/model", map[string]any{"prompt": "hi"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, assert.AnError.Error(), w.Body.String())
}

func TestComposerApi_Pin(t *testing.T) {
	testComposer := setupTestComposer(t, func(config *composer.ComposerConfig) {
		config.Uploader = &mockUploader{
			uploadJson: func(ctx context.Context, name string, document any) (string, error) {
				return "bafy-test", nil
			},
		}
	})
	router := testComposer.GetRouter()

	t.Run("GET / shows pin button", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), "Pin to IPFS")
	})

	t.Run("POST /api/messages/:id/pin", func(t *testing.T) {
		created := decodeMessage(t, postJson(t, router, "/api/template", map[string]string{"content_type": "Flirt Line"}))

		w := postJson(t, router, "/api/messages/"+created.ID+"/pin", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp composer.PinResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "bafy-test", resp.Cid)
	})

	t.Run("POST /api/messages/:id/pin upload error", func(t *testing.T) {
		failing := setupTestComposer(t, func(config *composer.ComposerConfig) {
			config.Uploader = &mockUploader{
				uploadJson: func(ctx context.Context, name string, document any) (string, error) {
					return "", assert.AnError
				},
			}
		})

		created := decodeMessage(t, postJson(t, failing.GetRouter(), "/api/template", map[string]string{}))

		w := postJson(t, failing.GetRouter(), "/api/messages/"+created.ID+"/pin", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), assert.AnError.Error())
	})
}
