// internal/models/product.go
package models

import "time"

// Product is a single catalog record. The catalog is loaded once at startup
// and treated as read-only afterwards.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"image_url"`
	Images     []string  `json:"images,omitempty"`
	Slug       string    `json:"slug"`
	Series     string    `json:"series"`
	Type       string    `json:"type"`
	DateAdded  time.Time `json:"date_added"`
	Popularity int       `json:"popularity_score"`
}

// HeroBanner is a homepage carousel entry.
type HeroBanner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ImageURL    string `json:"image_url"`
	CtaText     string `json:"cta_text"`
	CtaLink     string `json:"cta_link"`
	AltText     string `json:"alt_text"`
	DisplayRank int    `json:"display_rank"`
}
