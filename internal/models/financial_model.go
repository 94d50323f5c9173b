package models

import "time"

// FinancialStatus is the payment state of a financial task.
type FinancialStatus string

const (
	FinancialPendente FinancialStatus = "pendente"
	FinancialPago     FinancialStatus = "pago"
)

// FinancialTaskType distinguishes money owed to the office from money
// the office owes.
type FinancialTaskType string

const (
	FinancialReceita FinancialTaskType = "receita"
	FinancialDespesa FinancialTaskType = "despesa"
)

// FinancialTask is a receivable or payable entry, optionally tied to a
// process.
type FinancialTask struct {
	ID        string            `json:"id" firestore:"-"`
	Title     string            `json:"title" firestore:"title"`
	Type      FinancialTaskType `json:"type" firestore:"type"`
	DueDate   time.Time         `json:"dueDate" firestore:"dueDate"`
	Value     float64           `json:"value" firestore:"value"`
	Status    FinancialStatus   `json:"status" firestore:"status"`
	OfficeID  string            `json:"officeId" firestore:"officeId"`
	ProcessID string            `json:"processId,omitempty" firestore:"processId,omitempty"`
	CreatedAt time.Time         `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time         `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
