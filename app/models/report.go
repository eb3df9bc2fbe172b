package models

import (
	"fmt"
	"time"
)

const (
	CATEGORY_HEAVY_TRAFFIC = "heavy-traffic"
	CATEGORY_ACCIDENT      = "accident"
	CATEGORY_CONSTRUCTION  = "construction"
	CATEGORY_FLOOD         = "flood"
	CATEGORY_CHECKPOINT    = "checkpoint"
)

// CategoryMeta describes how a report category is rendered (badge label and color).
type CategoryMeta struct {
	Label string
	Color string
}

var categoryMeta = map[string]CategoryMeta{
	CATEGORY_HEAVY_TRAFFIC: {Label: "Heavy Traffic", Color: "orange"},
	CATEGORY_ACCIDENT:      {Label: "Accident", Color: "red"},
	CATEGORY_CONSTRUCTION:  {Label: "Construction", Color: "yellow"},
	CATEGORY_FLOOD:         {Label: "Flood", Color: "blue"},
	CATEGORY_CHECKPOINT:    {Label: "Checkpoint", Color: "purple"},
}

// LookupCategory resolves render metadata for a category. Unknown categories
// are an error so broken upstream data surfaces instead of rendering mislabeled.
func LookupCategory(category string) (CategoryMeta, error) {
	meta, ok := categoryMeta[category]
	if !ok {
		return CategoryMeta{}, fmt.Errorf("unknown report category: %q", category)
	}
	return meta, nil
}

// ReportCategories returns the fixed category set in display order.
func ReportCategories() []string {
	return []string{
		CATEGORY_HEAVY_TRAFFIC,
		CATEGORY_ACCIDENT,
		CATEGORY_CONSTRUCTION,
		CATEGORY_FLOOD,
		CATEGORY_CHECKPOINT,
	}
}

// Reporter identifies the user who submitted a report.
type Reporter struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// CommentReply is a nested reply on a comment. Read-only here; replies are
// created elsewhere in the platform.
type CommentReply struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        string         `json:"id,omitempty"` // empty until the backend persists it
	AuthorID  string         `json:"author_id"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	Replies   []CommentReply `json:"replies,omitempty"`
}

// Report is a user-submitted traffic report as delivered by the backend.
// The dashboard never mutates these; it only renders and forwards actions.
type Report struct {
	ID          string    `json:"id"`
	Category    string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	PhotoURL    string    `json:"image_url,omitempty"`
	Reporter    Reporter  `json:"user"`
	Upvotes     int       `json:"upvotes"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentCount returns the number of top-level comments.
func (r *Report) CommentCount() int {
	return len(r.Comments)
}

// EngagementScore is upvotes plus comment count.
func (r *Report) EngagementScore() int {
	return r.Upvotes + len(r.Comments)
}

// HasLocation reports whether the backend supplied a location name.
func (r *Report) HasLocation() bool {
	return r.Location != ""
}
