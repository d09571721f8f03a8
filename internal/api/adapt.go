package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Adaptation is the AI-rewritten text for a child's reading level.
type Adaptation struct {
	KidID        int    `json:"kid_id"`
	OriginalText string `json:"original_text"`
	AdaptedText  string `json:"adapted_text"`
	ReadingLevel string `json:"reading_level"`
}

// AISession is the backend's AI tutoring state for one child.
type AISession struct {
	KidID        int    `json:"kid_id"`
	ReadingLevel string `json:"reading_level"`
	Interactions int    `json:"interactions"`
	UpdatedAt    string `json:"updated_at"`
}

// AdaptText asks the backend to rewrite text for the child's reading level.
// The response is schema-validated before decoding; a payload the backend's
// model mangled surfaces as an error, not a half-filled struct.
func (c *Client) AdaptText(ctx context.Context, kidID int, text string) (Adaptation, error) {
	in := struct {
		InputText string `json:"input_text"`
	}{InputText: text}

	data, err := json.Marshal(in)
	if err != nil {
		return Adaptation{}, fmt.Errorf("encode request: %w", err)
	}

	raw, err := c.postRaw(ctx, fmt.Sprintf("/ai-adapt/%d", kidID), data)
	if err != nil {
		return Adaptation{}, fmt.Errorf("adapt text: %w", err)
	}

	if err := validate(adaptationSchema, raw); err != nil {
		return Adaptation{}, fmt.Errorf("adapt text: %w", err)
	}

	var a Adaptation
	if err := json.Unmarshal(raw, &a); err != nil {
		return Adaptation{}, fmt.Errorf("decode adaptation: %w", err)
	}
	return a, nil
}

// GetAISession fetches the AI session state for a child.
func (c *Client) GetAISession(ctx context.Context, kidID int) (AISession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/ai-session/%d", c.baseURL, kidID), nil)
	if err != nil {
		return AISession{}, err
	}

	raw, err := c.send(req)
	if err != nil {
		return AISession{}, fmt.Errorf("get ai session: %w", err)
	}

	if err := validate(aiSessionSchema, raw); err != nil {
		return AISession{}, fmt.Errorf("get ai session: %w", err)
	}

	var s AISession
	if err := json.Unmarshal(raw, &s); err != nil {
		return AISession{}, fmt.Errorf("decode ai session: %w", err)
	}
	return s, nil
}

func (c *Client) postRaw(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, jsonBody(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req)
}
