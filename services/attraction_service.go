// services/attraction_service.go
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"motel-backend/utils"
)

const defaultGenAIEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// AttractionDecision is the single constrained output of the helper.
type AttractionDecision struct {
	IncludeAttractions bool `json:"includeAttractions"`
}

// AttractionService asks a generative-text backend whether the map view
// should show nearby attractions. One prompt per call, no retries, no
// caching; callers fall back to "no attractions" on any failure.
type AttractionService struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewAttractionService() *AttractionService {
	return &AttractionService{
		Endpoint: utils.EnvOrDefault("GENAI_ENDPOINT", defaultGenAIEndpoint),
		APIKey:   utils.EnvOrDefault("GENAI_API_KEY", ""),
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type genAIRequest struct {
	Contents         []genAIContent `json:"contents"`
	GenerationConfig genAIConfig    `json:"generationConfig"`
}

type genAIContent struct {
	Parts []genAIPart `json:"parts"`
}

type genAIPart struct {
	Text string `json:"text"`
}

type genAIConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type genAIResponse struct {
	Candidates []struct {
		Content struct {
			Parts []genAIPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// DecideNearbyAttractions sends the user preference to the model and parses
// the boolean decision out of its JSON reply.
func (s *AttractionService) DecideNearbyAttractions(userPreference string) (AttractionDecision, error) {
	var decision AttractionDecision

	if s.APIKey == "" {
		return decision, errors.New("genai_not_configured")
	}

	prompt := fmt.Sprintf(
		`Based on the user's preference: %q, decide whether or not to include nearby attractions on the map. `+
			`Respond with a JSON object containing a single boolean field "includeAttractions" indicating your decision.`,
		strings.TrimSpace(userPreference),
	)

	payload := genAIRequest{
		Contents:         []genAIContent{{Parts: []genAIPart{{Text: prompt}}}},
		GenerationConfig: genAIConfig{ResponseMIMEType: "application/json"},
	}

	b, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, s.Endpoint, bytes.NewReader(b))
	if err != nil {
		return decision, fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return decision, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decision, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var out genAIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return decision, fmt.Errorf("JSON parse error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return decision, errors.New("empty model response")
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), &decision); err != nil {
		return decision, fmt.Errorf("model returned non-conforming output: %w", err)
	}
	return decision, nil
}
