package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func TestKidsCRUD(t *testing.T) {
	kid := Kid{ID: 1, Name: "Amina", Age: 8, Grade: 3, ReadingLevel: "beginner", Language: "sw"}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/kids/":
			var in KidInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Amina", in.Name)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(kid)
		case r.Method == http.MethodGet && r.URL.Path == "/kids/":
			_ = json.NewEncoder(w).Encode([]Kid{kid})
		case r.Method == http.MethodGet && r.URL.Path == "/kids/1":
			_ = json.NewEncoder(w).Encode(kid)
		case r.Method == http.MethodPatch && r.URL.Path == "/kids/1":
			var patch map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			// Partial update: only the changed field is sent.
			assert.Equal(t, map[string]any{"reading_level": "intermediate"}, patch)
			updated := kid
			updated.ReadingLevel = "intermediate"
			_ = json.NewEncoder(w).Encode(updated)
		case r.Method == http.MethodDelete && r.URL.Path == "/kids/1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()

	created, err := client.CreateKid(ctx, KidInput{Name: "Amina", Age: 8, Grade: 3, ReadingLevel: "beginner", Language: "sw"})
	require.NoError(t, err)
	assert.Equal(t, kid, created)

	kids, err := client.ListKids(ctx)
	require.NoError(t, err)
	assert.Len(t, kids, 1)

	got, err := client.GetKid(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Amina", got.Name)

	level := "intermediate"
	updated, err := client.UpdateKid(ctx, 1, KidPatch{ReadingLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, "intermediate", updated.ReadingLevel)

	require.NoError(t, client.DeleteKid(ctx, 1))
}

func TestBackendErrorSurfacesDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Kid not found"}`))
	})

	_, err := client.GetKid(context.Background(), 99)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Kid not found", apiErr.Message)
}

func TestSynthesizeReturnsAudioBytes(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00} // MP3 frame header

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tts/", r.URL.Path)
		var req SpeechRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Slow)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	})

	got, err := client.Synthesize(context.Background(), SpeechRequest{
		Text: "Once upon a time", KidID: 1, Lang: "en", Slow: true,
	})
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestTranscribeUploadsMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stt/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "reading.wav", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake-audio", string(data))

		_ = json.NewEncoder(w).Encode(Transcript{Text: "once upon a time", Confidence: 0.93})
	})

	got, err := client.Transcribe(context.Background(), "reading.wav", strings.NewReader("fake-audio"))
	require.NoError(t, err)
	assert.Equal(t, "once upon a time", got.Text)
	assert.InDelta(t, 0.93, got.Confidence, 1e-9)
}

func TestAdaptText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai-adapt/1", r.URL.Path)
		var in struct {
			InputText string `json:"input_text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "The savanna stretched wide.", in.InputText)

		_ = json.NewEncoder(w).Encode(Adaptation{
			KidID:        1,
			OriginalText: in.InputText,
			AdaptedText:  "The grass land was big.",
			ReadingLevel: "beginner",
		})
	})

	got, err := client.AdaptText(context.Background(), 1, "The savanna stretched wide.")
	require.NoError(t, err)
	assert.Equal(t, "The grass land was big.", got.AdaptedText)
	assert.Equal(t, "beginner", got.ReadingLevel)
}

func TestAdaptTextRejectsMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// adapted_text missing, reading_level outside the enum.
		_, _ = w.Write([]byte(`{"kid_id":1,"reading_level":"expert"}`))
	})

	_, err := client.AdaptText(context.Background(), 1, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestGetAISession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai-session/1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(AISession{
			KidID: 1, ReadingLevel: "beginner", Interactions: 4, UpdatedAt: "2025-10-03T10:00:00Z",
		})
	})

	got, err := client.GetAISession(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Interactions)
}

func TestGetAISessionRejectsNegativeInteractions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kid_id":1,"reading_level":"beginner","interactions":-2}`))
	})

	_, err := client.GetAISession(context.Background(), 1)
	require.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SOMABUDDY_API_URL", "http://backend:9000")
	t.Setenv("SOMABUDDY_API_TIMEOUT", "10s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "http://backend:9000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("SOMABUDDY_API_URL", "")
	t.Setenv("SOMABUDDY_API_TIMEOUT", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}
