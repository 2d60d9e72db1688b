package model

// Template is a ready-made deck outline offered in the catalog.
type Template struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Popularity   float64 `json:"popularity"`
	Slides       []Slide `json:"slides"`
}
