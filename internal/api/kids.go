package api

import (
	"context"
	"fmt"
	"net/http"
)

// Kid is a child profile as the backend stores it.
type Kid struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Grade        int    `json:"grade"`
	ReadingLevel string `json:"reading_level"`
	Language     string `json:"language"`
}

// KidInput is the payload for creating a profile.
type KidInput struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Grade        int    `json:"grade"`
	ReadingLevel string `json:"reading_level"`
	Language     string `json:"language"`
}

// KidPatch is a partial update; nil fields are left unchanged.
type KidPatch struct {
	Name         *string `json:"name,omitempty"`
	Age          *int    `json:"age,omitempty"`
	Grade        *int    `json:"grade,omitempty"`
	ReadingLevel *string `json:"reading_level,omitempty"`
	Language     *string `json:"language,omitempty"`
}

// CreateKid creates a child profile.
func (c *Client) CreateKid(ctx context.Context, in KidInput) (Kid, error) {
	var kid Kid
	if err := c.doJSON(ctx, http.MethodPost, "/kids/", in, &kid); err != nil {
		return Kid{}, fmt.Errorf("create kid: %w", err)
	}
	return kid, nil
}

// ListKids returns all child profiles.
func (c *Client) ListKids(ctx context.Context) ([]Kid, error) {
	var kids []Kid
	if err := c.doJSON(ctx, http.MethodGet, "/kids/", nil, &kids); err != nil {
		return nil, fmt.Errorf("list kids: %w", err)
	}
	return kids, nil
}

// GetKid fetches one profile.
func (c *Client) GetKid(ctx context.Context, id int) (Kid, error) {
	var kid Kid
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/kids/%d", id), nil, &kid); err != nil {
		return Kid{}, fmt.Errorf("get kid %d: %w", id, err)
	}
	return kid, nil
}

// UpdateKid applies a partial update to a profile.
func (c *Client) UpdateKid(ctx context.Context, id int, patch KidPatch) (Kid, error) {
	var kid Kid
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/kids/%d", id), patch, &kid); err != nil {
		return Kid{}, fmt.Errorf("update kid %d: %w", id, err)
	}
	return kid, nil
}

// DeleteKid removes a profile.
func (c *Client) DeleteKid(ctx context.Context, id int) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/kids/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete kid %d: %w", id, err)
	}
	return nil
}
