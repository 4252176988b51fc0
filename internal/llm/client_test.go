package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint + "/"
	cfg.APIKeyEnv = "ASKEW_TEST_GEMINI_KEY"
	return cfg
}

func geminiReply(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			},
		}},
	}
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "user prompt")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiReply("  {\"patterns\":[\"hi\"]}  "))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "user prompt"})

	require.NoError(t, err)
	assert.Equal(t, `{"patterns":["hi"]}`, resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestGeminiClient_Generate_MissingKey(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "")
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	client := NewGeminiClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Contains(t, err.Error(), "ASKEW_TEST_GEMINI_KEY")
	assert.False(t, called)
	assert.Equal(t, "UNAVAILABLE", captured.ErrorCode)
}

func TestGeminiClient_KeyReadAtCallTime(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiReply("ok"))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "late-key")

	resp, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestGeminiClient_Generate_Disabled(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Enabled = false

	var captured []LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = append(captured, e) }}
	client := NewGeminiClient(cfg, obs)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
	require.Len(t, captured, 1)
	assert.False(t, captured[0].Success)
	assert.Equal(t, 0, captured[0].Attempts)
	assert.Equal(t, "UNAVAILABLE", captured[0].ErrorCode)
}

func TestGeminiClient_Generate_ServerError(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	client := NewGeminiClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.False(t, captured.Success)
	assert.Equal(t, "REQUEST_FAILED", captured.ErrorCode)
}

func TestGeminiClient_Generate_RetriesFailedCall(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`))
			return
		}
		json.NewEncoder(w).Encode(geminiReply("second time lucky"))
	}))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	resp, err := NewGeminiClient(cfg, obs).Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "second time lucky", resp.Text)
	assert.Equal(t, int32(2), hits.Load())
	assert.True(t, captured.Success)
	assert.Equal(t, 2, captured.Attempts)
}

func TestGeminiClient_Generate_NoRetryByDefault(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(geminiReply(""))
	}))
	defer srv.Close()

	_, err := NewGeminiClient(testConfig(srv.URL), NoopObserver{}).Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGeminiClient_Generate_EmptyText(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiReply("   "))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(geminiReply("late"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	client := NewGeminiClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGeminiClient_ObserverCalled(t *testing.T) {
	t.Setenv("ASKEW_TEST_GEMINI_KEY", "test-key")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiReply("ok"))
	}))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	client := NewGeminiClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "test"})

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", captured.Model)
	assert.True(t, captured.Success)
	assert.Equal(t, 1, captured.Attempts)
}

type captureObserver struct {
	fn func(LLMCallEvent)
}

func (o *captureObserver) OnCallComplete(e LLMCallEvent) { o.fn(e) }
