// Package relay exposes the HTTP generation relay that forwards prompts to
// an OpenAI-compatible provider.
package relay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dtroode/deckhub-server/internal/composer"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// Greeting is the body of GET /.
const Greeting = "Welcome to the deckhub generation relay!"

// MaxBodySize bounds request bodies of the generation endpoints.
const MaxBodySize = 1 << 20

// Handler serves relay endpoints.
type Handler struct {
	provider Provider
	composer *composer.Composer
	logger   *logger.Logger
}

// NewHandler creates new relay handler.
func NewHandler(provider Provider, composer *composer.Composer, logger *logger.Logger) *Handler {
	return &Handler{
		provider: provider,
		composer: composer,
		logger:   logger,
	}
}

// Router registers relay routes on a new gorilla/mux router.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/generate", h.Generate).Methods(http.MethodPost)
	r.HandleFunc("/api/presentation", h.Presentation).Methods(http.MethodPost)
	return r
}

// Index greets the caller.
// GET /
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(Greeting))
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Generate forwards a raw prompt.
// POST /generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	text, err := h.provider.Complete(r.Context(), req.Prompt, req.APIKey)
	if err != nil {
		h.logger.Error("Relay: provider call failed", "error", err, "apiKey", logger.Mask(req.APIKey))
		writeError(w, http.StatusBadGateway, "Failed to generate content")
		return
	}

	writeJSON(w, http.StatusOK, Response{Result: text, Source: h.provider.Name()})
}

// Presentation builds a presentation prompt from title and content.
// POST /api/presentation
func (h *Handler) Presentation(w http.ResponseWriter, r *http.Request) {
	var req PresentationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	text, err := h.provider.Complete(r.Context(), PresentationPrompt(req), req.APIKey)
	if err != nil {
		h.logger.Error("Relay: provider call failed", "error", err, "title", req.Title, "apiKey", logger.Mask(req.APIKey))
		writeError(w, http.StatusBadGateway, "Failed to generate presentation")
		return
	}

	resp := Response{Result: text, Source: h.provider.Name()}
	if req.Compose {
		resp.Presentation = &model.Deck{
			Title:  req.Title,
			Slides: h.composer.ComposeText(req.Title, text),
		}
	}

	h.logger.Info("Relay: presentation generated", "title", req.Title, "slideBySlide", req.SlideBySlide)
	writeJSON(w, http.StatusOK, resp)
}

// PresentationPrompt builds the provider prompt for a presentation request.
// Both modes ask for "Slide N: Title" blocks so the answer can be parsed.
func PresentationPrompt(req PresentationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a presentation titled %q.\n", req.Title)
	if req.SlideBySlide {
		b.WriteString("Keep the slide structure given below and expand each slide into concise bullet points.\n")
	} else {
		b.WriteString("Turn the notes below into an outline of 4 to 8 slides.\n")
	}
	b.WriteString("Format every slide as a line \"Slide N: Title\" followed by bullet points starting with \"- \".\n\n")
	b.WriteString(req.Content)
	return b.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
