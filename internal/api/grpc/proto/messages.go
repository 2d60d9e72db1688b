// Package proto declares the deckhub RPC messages and service descriptors.
// Messages travel as JSON, see package codec.
package proto

// Empty is a message without fields.
type Empty struct{}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Identity struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

type SessionResponse struct {
	User         *Identity `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type SlideStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Gradient        string `json:"gradient,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	Alignment       string `json:"alignment,omitempty"`
}

type Slide struct {
	Title    string      `json:"title"`
	Content  string      `json:"content"`
	ImageUrl string      `json:"imageUrl,omitempty"`
	Style    *SlideStyle `json:"style,omitempty"`
}

type Deck struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	CreatedAt string   `json:"createdAt"`
	Slides    []*Slide `json:"slides"`
}

// GenerateRequest carries the generation form. ApiKey is forwarded to the
// provider and never stored.
type GenerateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	ApiKey  string `json:"apiKey,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Consent bool   `json:"consent"`
}

type DeckResponse struct {
	Deck *Deck `json:"deck"`
}

type ListDecksRequest struct{}

type ListDecksResponse struct {
	Decks []*Deck `json:"decks"`
}

type GetDeckRequest struct {
	Id string `json:"id"`
}

type SlideEdit struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SaveDeckRequest struct {
	Id     string       `json:"id"`
	Title  string       `json:"title"`
	Slides []*SlideEdit `json:"slides"`
}

type DeleteDeckRequest struct {
	Id string `json:"id"`
}

type ExportDeckRequest struct {
	Id string `json:"id"`
}

type ExportDeckResponse struct {
	FileName string `json:"fileName"`
	Data     []byte `json:"data"`
}

type Template struct {
	Id           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	ThumbnailUrl string   `json:"thumbnailUrl,omitempty"`
	Popularity   float64  `json:"popularity"`
	Slides       []*Slide `json:"slides"`
}

// ListTemplatesRequest filters the catalog. An empty or "All" category
// matches every category.
type ListTemplatesRequest struct {
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
}

type ListTemplatesResponse struct {
	Templates []*Template `json:"templates"`
}

type UseTemplateRequest struct {
	TemplateId string `json:"templateId"`
}
