package models

import "time"

// SignupRequest creates the first (master) account of a new office.
type SignupRequest struct {
	OfficeName string `json:"officeName" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

// InviteRequest adds a member to the inviter's office.
type InviteRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UpdateProfileRequest carries partial profile edits. Pointers
// distinguish "not provided" from "clear this field".
type UpdateProfileRequest struct {
	FullName    *string   `json:"fullName"`
	OAB         *string   `json:"oab"`
	Specialties *[]string `json:"specialties"`
	Bio         *string   `json:"bio"`
	PhotoURL    *string   `json:"photoURL"`
}

// ChangePasswordRequest updates the caller's own credential through the
// identity provider.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UpdateOfficeRequest carries partial office settings edits.
type UpdateOfficeRequest struct {
	Name         *string    `json:"name"`
	GeminiAPIKey *string    `json:"geminiApiKey"`
	SEO          *OfficeSEO `json:"seo"`
	TagManagerID *string    `json:"tagManagerId"`
}

// CreateClientRequest creates a client record.
type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	CPF     string  `json:"cpf"`
	RG      string  `json:"rg"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Notes   string  `json:"notes"`
}

// UpdateClientRequest carries partial client edits.
type UpdateClientRequest struct {
	Name    *string  `json:"name"`
	CPF     *string  `json:"cpf"`
	RG      *string  `json:"rg"`
	Email   *string  `json:"email"`
	Phone   *string  `json:"phone"`
	Address *Address `json:"address"`
	Notes   *string  `json:"notes"`
}

// CreateProcessRequest creates a legal case. OwnerID is honored only
// when the caller is a master; otherwise the caller becomes the owner.
type CreateProcessRequest struct {
	ProcessNumber string `json:"processNumber" binding:"required"`
	Plaintiff     string `json:"plaintiff"`
	Defendant     string `json:"defendant"`
	Court         string `json:"court"`
	Subject       string `json:"subject"`
	Status        string `json:"status"`
	ClientID      string `json:"clientId"`
	OwnerID       string `json:"ownerId"`
}

// UpdateProcessRequest carries partial process edits.
type UpdateProcessRequest struct {
	ProcessNumber *string `json:"processNumber"`
	Plaintiff     *string `json:"plaintiff"`
	Defendant     *string `json:"defendant"`
	Court         *string `json:"court"`
	Subject       *string `json:"subject"`
	Status        *string `json:"status"`
	ClientID      *string `json:"clientId"`
}

// AppendMovementRequest appends one entry to a process's movement log.
type AppendMovementRequest struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Details     string `json:"details"`
}

// CollaboratorRequest adds or removes a user on a process ACL.
type CollaboratorRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// PostChatMessageRequest posts to a process discussion thread.
type PostChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateEventRequest creates an agenda entry.
type CreateEventRequest struct {
	Title     string    `json:"title" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	LawyerID  string    `json:"lawyerId"`
	ProcessID string    `json:"processId"`
	ClientID  string    `json:"clientId"`
	Notes     string    `json:"notes"`
}

// UpdateEventRequest carries partial event edits.
type UpdateEventRequest struct {
	Title     *string    `json:"title"`
	Date      *time.Time `json:"date"`
	Type      *string    `json:"type"`
	Status    *string    `json:"status"`
	ProcessID *string    `json:"processId"`
	ClientID  *string    `json:"clientId"`
	Notes     *string    `json:"notes"`
}

// CreateFinancialTaskRequest creates a receivable/payable entry.
type CreateFinancialTaskRequest struct {
	Title     string    `json:"title" binding:"required"`
	Type      string    `json:"type" binding:"required"`
	DueDate   time.Time `json:"dueDate" binding:"required"`
	Value     float64   `json:"value" binding:"required"`
	ProcessID string    `json:"processId"`
}

// UpdateFinancialTaskRequest carries partial financial-task edits.
type UpdateFinancialTaskRequest struct {
	Title     *string    `json:"title"`
	Type      *string    `json:"type"`
	DueDate   *time.Time `json:"dueDate"`
	Value     *float64   `json:"value"`
	ProcessID *string    `json:"processId"`
}

// CreateTemplateRequest creates a document template.
type CreateTemplateRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateTemplateRequest carries partial template edits.
type UpdateTemplateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// SubmitContactRequest is the unauthenticated contact-form payload.
type SubmitContactRequest struct {
	OfficeID string `json:"officeId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message" binding:"required"`
}
