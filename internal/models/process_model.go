package models

import "time"

// ProcessStatus is the procedural stage of a legal case. The canonical
// set mirrors the Brazilian procedural vocabulary; the short legacy set
// (active/pending/archived) from early data is accepted on read and
// normalized, never written back.
type ProcessStatus string

const (
	StatusADistribuir         ProcessStatus = "a_distribuir"
	StatusEmAndamento         ProcessStatus = "em_andamento"
	StatusEmRecurso           ProcessStatus = "em_recurso"
	StatusExecucao            ProcessStatus = "execucao"
	StatusArquivadoProvisorio ProcessStatus = "arquivado_provisorio"
	StatusArquivadoDefinitivo ProcessStatus = "arquivado_definitivo"
)

// NormalizeProcessStatus maps legacy status values onto the canonical
// enum. Unknown values fall back to StatusADistribuir.
func NormalizeProcessStatus(s string) ProcessStatus {
	switch ProcessStatus(s) {
	case StatusADistribuir, StatusEmAndamento, StatusEmRecurso,
		StatusExecucao, StatusArquivadoProvisorio, StatusArquivadoDefinitivo:
		return ProcessStatus(s)
	}
	switch s {
	case "active":
		return StatusEmAndamento
	case "pending":
		return StatusADistribuir
	case "archived":
		return StatusArquivadoDefinitivo
	default:
		return StatusADistribuir
	}
}

// Movement is one append-only entry in a process's procedural log.
// Date is kept as an ISO8601 string so that two identical movements are
// equal element-wise, which is what Firestore's ArrayUnion dedupes on.
type Movement struct {
	Date        string `json:"date" firestore:"date"`
	Description string `json:"description" firestore:"description"`
	Details     string `json:"details,omitempty" firestore:"details,omitempty"`
}

// Process is a legal case. Access for non-master users is gated by
// OwnerID and the CollaboratorIDs access-control list on top of the
// office boundary.
type Process struct {
	ID              string        `json:"id" firestore:"-"`
	ProcessNumber   string        `json:"processNumber" firestore:"processNumber"`
	Plaintiff       string        `json:"plaintiff,omitempty" firestore:"plaintiff,omitempty"`
	Defendant       string        `json:"defendant,omitempty" firestore:"defendant,omitempty"`
	Court           string        `json:"court,omitempty" firestore:"court,omitempty"`
	Subject         string        `json:"subject,omitempty" firestore:"subject,omitempty"`
	Status          ProcessStatus `json:"status" firestore:"status"`
	OfficeID        string        `json:"officeId" firestore:"officeId"`
	OwnerID         string        `json:"ownerId" firestore:"ownerId"`
	ClientID        string        `json:"clientId,omitempty" firestore:"clientId,omitempty"`
	CollaboratorIDs []string      `json:"collaboratorIds" firestore:"collaboratorIds"`
	Movements       []Movement    `json:"movements" firestore:"movements"`
	CreatedAt       time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt       time.Time     `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// HasCollaborator reports whether the given user is on the process ACL.
func (p *Process) HasCollaborator(userID string) bool {
	for _, id := range p.CollaboratorIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ProcessDocument is the metadata record of a file uploaded to a
// process; the bytes live in object storage under StoragePath.
type ProcessDocument struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	StoragePath string    `json:"storagePath" firestore:"storagePath"`
	ContentType string    `json:"contentType,omitempty" firestore:"contentType,omitempty"`
	Size        int64     `json:"size,omitempty" firestore:"size,omitempty"`
	UploadedBy  string    `json:"uploadedBy" firestore:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// ChatMessage is one entry in a process's internal discussion thread.
type ChatMessage struct {
	ID         string    `json:"id" firestore:"-"`
	AuthorID   string    `json:"authorId" firestore:"authorId"`
	AuthorName string    `json:"authorName,omitempty" firestore:"authorName,omitempty"`
	Text       string    `json:"text" firestore:"text"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
