package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// SpeechRequest asks the backend to synthesize audio for a piece of text.
// Slow playback is used for beginner readers.
type SpeechRequest struct {
	Text  string `json:"text"`
	KidID int    `json:"kid_id"`
	Lang  string `json:"lang"`
	Slow  bool   `json:"slow"`
}

// Synthesize generates speech audio and returns the raw audio bytes
// (MP3 as produced by the backend).
func (c *Client) Synthesize(ctx context.Context, in SpeechRequest) ([]byte, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tts/", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	audio, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return audio, nil
}

// Transcript is the result of a speech-to-text call.
type Transcript struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Transcribe uploads recorded audio as a multipart form and returns the
// transcription.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (Transcript, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return Transcript{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return Transcript{}, fmt.Errorf("copy audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Transcript{}, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stt/", &body)
	if err != nil {
		return Transcript{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	data, err := c.send(req)
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return Transcript{}, fmt.Errorf("decode transcript: %w", err)
	}
	return t, nil
}
