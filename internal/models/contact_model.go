package models

import "time"

// ContactRequestStatus tracks whether an inbound contact-form message
// has been handled.
type ContactRequestStatus string

const (
	ContactNovo     ContactRequestStatus = "novo"
	ContactAtendido ContactRequestStatus = "atendido"
)

// ContactRequest is a message submitted through the unauthenticated
// public contact form of an office's site.
type ContactRequest struct {
	ID        string               `json:"id" firestore:"-"`
	Name      string               `json:"name" firestore:"name"`
	Email     string               `json:"email" firestore:"email"`
	Phone     string               `json:"phone,omitempty" firestore:"phone,omitempty"`
	Message   string               `json:"message" firestore:"message"`
	OfficeID  string               `json:"officeId" firestore:"officeId"`
	Status    ContactRequestStatus `json:"status" firestore:"status"`
	CreatedAt time.Time            `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
