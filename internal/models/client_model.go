package models

import "time"

// Address groups the postal fields of a client record.
type Address struct {
	Street  string `json:"street,omitempty" firestore:"street,omitempty"`
	City    string `json:"city,omitempty" firestore:"city,omitempty"`
	State   string `json:"state,omitempty" firestore:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" firestore:"zipCode,omitempty"`
}

// Client is a person or company represented by the office. Processes,
// events and financial tasks reference clients by ID.
type Client struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	CPF       string    `json:"cpf,omitempty" firestore:"cpf,omitempty"`
	RG        string    `json:"rg,omitempty" firestore:"rg,omitempty"`
	Email     string    `json:"email,omitempty" firestore:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address   Address   `json:"address" firestore:"address,omitempty"`
	Notes     string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	OfficeID  string    `json:"officeId" firestore:"officeId"`
	CreatedBy string    `json:"createdBy" firestore:"createdBy"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
