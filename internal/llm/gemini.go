package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   os.Getenv("GEMINI_MODEL"),
		baseURL: defaultGeminiBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ExtractLabel sends the label prompt plus the inline image to Gemini
// and returns the raw text of the first candidate. The text is NOT
// guaranteed to be pure JSON; ExtractRecord handles that.
func (g *GeminiClient) ExtractLabel(
	ctx context.Context,
	imageBase64 string,
	mimeType string,
) (string, error) {

	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}
	if imageBase64 == "" {
		return "", errors.New("empty image data")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		g.baseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": BuildLabelPrompt()},
					{
						"inline_data": map[string]string{
							"mime_type": mimeType,
							"data":      imageBase64,
						},
					},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
