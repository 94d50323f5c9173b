package models

import "time"

// OfficeSEO holds the public-site metadata a master can edit from the
// settings screen.
type OfficeSEO struct {
	Title       string `json:"title,omitempty" firestore:"title,omitempty"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty" firestore:"keywords,omitempty"`
}

// Office is the tenant boundary. Every business document carries the
// office ID of exactly one Office; offices are created by the public
// signup flow and never deleted in-app.
type Office struct {
	ID           string    `json:"id" firestore:"-"`
	Name         string    `json:"name" firestore:"name"`
	GeminiAPIKey string    `json:"-" firestore:"geminiApiKey,omitempty"`
	SEO          OfficeSEO `json:"seo" firestore:"seo,omitempty"`
	TagManagerID string    `json:"tagManagerId,omitempty" firestore:"tagManagerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
