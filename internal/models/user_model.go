package models

import (
	"time"

	"jusgestor-backend-go/internal/authz"
)

// User represents a member of a law office. The document ID is the
// Firebase Auth UID, so the auth identity and the profile document are
// always linked one-to-one.
type User struct {
	ID          string     `json:"id" firestore:"-"`
	FullName    string     `json:"fullName" firestore:"fullName"`
	Email       string     `json:"email" firestore:"email"`
	Role        authz.Role `json:"role" firestore:"role"`
	OfficeID    string     `json:"officeId" firestore:"officeId"`
	OfficeName  string     `json:"officeName,omitempty" firestore:"officeName,omitempty"`
	OAB         string     `json:"oab,omitempty" firestore:"oab,omitempty"`
	Specialties []string   `json:"specialties,omitempty" firestore:"specialties,omitempty"`
	Bio         string     `json:"bio,omitempty" firestore:"bio,omitempty"`
	PhotoURL    string     `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time  `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
