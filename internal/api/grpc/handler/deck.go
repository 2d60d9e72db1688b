package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/deckhub-server/internal/api/grpc/proto"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// DeckService defines business operations on an owner's decks.
type DeckService interface {
	Generate(ctx context.Context, ownerID uuid.UUID, req model.GenerationRequest) (model.Deck, error)
	List(ctx context.Context, ownerID uuid.UUID) []model.Deck
	Get(ctx context.Context, ownerID uuid.UUID, deckID string) (model.Deck, error)
	Save(ctx context.Context, ownerID uuid.UUID, edit model.DeckEdit) (model.Deck, error)
	Delete(ctx context.Context, ownerID uuid.UUID, deckID string) error
	Export(ctx context.Context, ownerID uuid.UUID, deckID string) ([]byte, string, error)
	ListTemplates(category, query string) []model.Template
	UseTemplate(ctx context.Context, ownerID uuid.UUID, templateID string) (model.Deck, error)
}

// Decks handles gRPC endpoints for presentations.
type Decks struct {
	proto.UnimplementedDecksServer
	deckService    DeckService
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ proto.DecksServer = (*Decks)(nil)

// NewDecks creates a new Decks handler.
func NewDecks(deckService DeckService, contextManager model.ContextManager, logger *logger.Logger) *Decks {
	return &Decks{
		deckService:    deckService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Generate creates a presentation from the generation form.
func (h *Decks) Generate(ctx context.Context, req *proto.GenerateRequest) (*proto.DeckResponse, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Deck handler: processing generate request",
		"owner", ownerID,
		"mode", req.Mode,
		"apiKey", logger.Mask(req.ApiKey))

	deck, err := h.deckService.Generate(ctx, ownerID, model.GenerationRequest{
		Title:      req.Title,
		Content:    req.Content,
		Credential: req.ApiKey,
		Mode:       model.GenerationMode(req.Mode),
		Consent:    req.Consent,
	})
	if err != nil {
		h.logger.Error("Deck handler: generate failed",
			"owner", ownerID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.DeckResponse{Deck: deckToProto(deck)}, nil
}

// List returns the owner's presentations in stored order.
func (h *Decks) List(ctx context.Context, _ *proto.ListDecksRequest) (*proto.ListDecksResponse, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	decks := h.deckService.List(ctx, ownerID)
	out := make([]*proto.Deck, 0, len(decks))
	for _, deck := range decks {
		out = append(out, deckToProto(deck))
	}

	h.logger.Debug("Deck handler: list completed", "owner", ownerID, "count", len(out))

	return &proto.ListDecksResponse{Decks: out}, nil
}

// Get returns one presentation.
func (h *Decks) Get(ctx context.Context, req *proto.GetDeckRequest) (*proto.DeckResponse, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "presentation id is required")
	}

	deck, err := h.deckService.Get(ctx, ownerID, req.Id)
	if err != nil {
		h.logger.Info("Deck handler: get failed", "owner", ownerID, "deckID", req.Id, "error", err.Error())
		return nil, handleError(err)
	}

	return &proto.DeckResponse{Deck: deckToProto(deck)}, nil
}

// Save replaces the editable fields of a presentation.
func (h *Decks) Save(ctx context.Context, req *proto.SaveDeckRequest) (*proto.DeckResponse, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "presentation id is required")
	}

	edit := model.DeckEdit{
		ID:     req.Id,
		Title:  req.Title,
		Slides: make([]model.SlideEdit, 0, len(req.Slides)),
	}
	for _, slide := range req.Slides {
		if slide == nil {
			return nil, status.Error(codes.InvalidArgument, "slide must not be empty")
		}
		edit.Slides = append(edit.Slides, model.SlideEdit{Title: slide.Title, Content: slide.Content})
	}

	deck, err := h.deckService.Save(ctx, ownerID, edit)
	if err != nil {
		h.logger.Error("Deck handler: save failed",
			"owner", ownerID,
			"deckID", req.Id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.DeckResponse{Deck: deckToProto(deck)}, nil
}

// Delete removes a presentation.
func (h *Decks) Delete(ctx context.Context, req *proto.DeleteDeckRequest) (*proto.Empty, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "presentation id is required")
	}

	if err := h.deckService.Delete(ctx, ownerID, req.Id); err != nil {
		h.logger.Error("Deck handler: delete failed",
			"owner", ownerID,
			"deckID", req.Id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.Empty{}, nil
}

// Export returns a presentation as a JSON document with its download name.
func (h *Decks) Export(ctx context.Context, req *proto.ExportDeckRequest) (*proto.ExportDeckResponse, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "presentation id is required")
	}

	data, name, err := h.deckService.Export(ctx, ownerID, req.Id)
	if err != nil {
		h.logger.Info("Deck handler: export failed", "owner", ownerID, "deckID", req.Id, "error", err.Error())
		return nil, handleError(err)
	}

	return &proto.ExportDeckResponse{FileName: name, Data: data}, nil
}

// ListTemplates returns catalog templates filtered by category and title.
func (h *Decks) ListTemplates(ctx context.Context, req *proto.ListTemplatesRequest) (*proto.ListTemplatesResponse, error) {
	if _, err := h.ownerFromContext(ctx); err != nil {
		return nil, err
	}

	found := h.deckService.ListTemplates(req.Category, req.Query)
	out := make([]*proto.Template, 0, len(found))
	for _, t := range found {
		out = append(out, &proto.Template{
			Id:           t.ID,
			Title:        t.Title,
			Category:     t.Category,
			ThumbnailUrl: t.ThumbnailURL,
			Popularity:   t.Popularity,
			Slides:       slidesToProto(t.Slides),
		})
	}

	return &proto.ListTemplatesResponse{Templates: out}, nil
}

// UseTemplate creates a presentation from a catalog template.
func (h *Decks) UseTemplate(ctx context.Context, req *proto.UseTemplateRequest) (*proto.DeckResponse, error) {
	ownerID, err := h.ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.TemplateId == "" {
		return nil, status.Error(codes.InvalidArgument, "template id is required")
	}

	deck, err := h.deckService.UseTemplate(ctx, ownerID, req.TemplateId)
	if err != nil {
		h.logger.Error("Deck handler: use template failed",
			"owner", ownerID,
			"templateID", req.TemplateId,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.DeckResponse{Deck: deckToProto(deck)}, nil
}

func (h *Decks) ownerFromContext(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "user id not found in context")
	}
	return ownerID, nil
}

func deckToProto(deck model.Deck) *proto.Deck {
	return &proto.Deck{
		Id:        deck.ID,
		Title:     deck.Title,
		CreatedAt: deck.CreatedAt,
		Slides:    slidesToProto(deck.Slides),
	}
}

func slidesToProto(slides []model.Slide) []*proto.Slide {
	out := make([]*proto.Slide, 0, len(slides))
	for _, slide := range slides {
		s := &proto.Slide{
			Title:    slide.Title,
			Content:  slide.Content,
			ImageUrl: slide.ImageURL,
		}
		if slide.Style != nil {
			s.Style = &proto.SlideStyle{
				BackgroundColor: slide.Style.BackgroundColor,
				Gradient:        slide.Style.Gradient,
				TextColor:       slide.Style.TextColor,
				FontSize:        string(slide.Style.FontSize),
				Alignment:       string(slide.Style.Alignment),
			}
		}
		out = append(out, s)
	}
	return out
}
