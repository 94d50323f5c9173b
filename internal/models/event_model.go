package models

import "time"

// EventType classifies an agenda entry.
type EventType string

const (
	EventAudiencia EventType = "audiencia"
	EventPrazo     EventType = "prazo"
	EventReuniao   EventType = "reuniao"
	EventOutro     EventType = "outro"
)

// ValidEventType reports whether t is one of the known event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventAudiencia, EventPrazo, EventReuniao, EventOutro:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of an agenda entry.
type EventStatus string

const (
	EventAgendada   EventStatus = "agendada"
	EventConfirmada EventStatus = "confirmada"
	EventConcluida  EventStatus = "concluida"
	EventCancelada  EventStatus = "cancelada"
)

// Event is an agenda entry (hearing, deadline, meeting) assigned to a
// lawyer and optionally linked to a process and/or client.
type Event struct {
	ID        string      `json:"id" firestore:"-"`
	Title     string      `json:"title" firestore:"title"`
	Date      time.Time   `json:"date" firestore:"date"`
	Type      EventType   `json:"type" firestore:"type"`
	Status    EventStatus `json:"status" firestore:"status"`
	OfficeID  string      `json:"officeId" firestore:"officeId"`
	LawyerID  string      `json:"lawyerId" firestore:"lawyerId"`
	ProcessID string      `json:"processId,omitempty" firestore:"processId,omitempty"`
	ClientID  string      `json:"clientId,omitempty" firestore:"clientId,omitempty"`
	Notes     string      `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time   `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
