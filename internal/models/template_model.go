package models

import "time"

// DocumentTemplate is a reusable markdown document managed by the
// office master (contracts, procurations, standard petitions).
type DocumentTemplate struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Content   string    `json:"content" firestore:"content"`
	OfficeID  string    `json:"officeId" firestore:"officeId"`
	CreatedBy string    `json:"createdBy" firestore:"createdBy"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
