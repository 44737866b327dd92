package models

// Article is one read-only catalog record. Prompt is the topic handed to the
// AI content service when the article body is requested.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Prompt      string `json:"-"`
}
