package relay

import "github.com/dtroode/deckhub-server/internal/model"

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey,omitempty"`
}

// PresentationRequest is the body of POST /api/presentation.
type PresentationRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	SlideBySlide bool   `json:"slideBySlide,omitempty"`
	APIKey       string `json:"apiKey,omitempty"`
	// Compose asks the relay to return a structured deck instead of raw text.
	Compose bool `json:"compose,omitempty"`
}

// Response is the success body of both endpoints.
type Response struct {
	Result       string      `json:"result"`
	Source       string      `json:"source"`
	Presentation *model.Deck `json:"presentation,omitempty"`
}

// ErrorResponse is the body of a non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
