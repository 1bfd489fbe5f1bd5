package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testGeminiClient(baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  "test-key",
		model:   "gemini-test",
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func geminiTextResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": text},
					},
				},
			},
		},
	}
}

func TestExtractLabel_SendsPromptAndInlineImage(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not sent")
		}

		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(geminiTextResponse(`{"name":"Oat Bar","nutritionalInfo":[]}`))
	}))
	defer srv.Close()

	client := testGeminiClient(srv.URL)

	text, err := client.ExtractLabel(context.Background(), "aW1hZ2U=", "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Oat Bar") {
		t.Fatalf("unexpected text: %s", text)
	}

	raw, _ := json.Marshal(gotBody)
	body := string(raw)

	if !strings.Contains(body, "nutritionalInfo") {
		t.Error("prompt missing from request")
	}
	if !strings.Contains(body, "aW1hZ2U=") {
		t.Error("image data missing from request")
	}
	if !strings.Contains(body, "image/png") {
		t.Error("mime type missing from request")
	}
}

func TestExtractLabel_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := testGeminiClient(srv.URL)

	_, err := client.ExtractLabel(context.Background(), "aW1hZ2U=", "image/jpeg")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected upstream message in error, got: %v", err)
	}
}

func TestExtractLabel_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client := testGeminiClient(srv.URL)

	_, err := client.ExtractLabel(context.Background(), "aW1hZ2U=", "image/jpeg")
	if err == nil {
		t.Fatal("expected an error for empty candidates")
	}
}

func TestExtractLabel_MissingConfig(t *testing.T) {
	client := &GeminiClient{}

	if _, err := client.ExtractLabel(context.Background(), "aW1hZ2U=", ""); err == nil {
		t.Fatal("expected an error without api key")
	}

	client = &GeminiClient{apiKey: "k", model: "m"}
	if _, err := client.ExtractLabel(context.Background(), "", ""); err == nil {
		t.Fatal("expected an error for empty image")
	}
}
