package model

import "context"

// Generator turns a generation request into a finished deck.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (Deck, error)
}

// GenerationMode selects how request content is interpreted.
type GenerationMode string

const (
	// ModeFreeForm treats content as free text.
	ModeFreeForm GenerationMode = "free-form"
	// ModeSlideBySlide expects "Slide N: Title" blocks.
	ModeSlideBySlide GenerationMode = "slide-by-slide"
)

// GenerationRequest is an ephemeral input of one generation call.
type GenerationRequest struct {
	Title      string
	Content    string
	Credential string
	Mode       GenerationMode
	Consent    bool
}

// SlideBySlide reports whether the request is in slide-by-slide mode.
func (r GenerationRequest) SlideBySlide() bool {
	return r.Mode == ModeSlideBySlide
}

// Topic is a coarse content category used to pick image pools.
type Topic string

const (
	TopicBusiness   Topic = "business"
	TopicTechnology Topic = "technology"
	TopicEducation  Topic = "education"
	TopicMarketing  Topic = "marketing"
	TopicNature     Topic = "nature"
	TopicHealth     Topic = "health"
	TopicGeneral    Topic = "general"
)

// Notifier delivers user-facing notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotificationLevel is a severity of a notification.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a dismissible message for the user.
type Notification struct {
	Level       NotificationLevel
	Title       string
	Description string
}
