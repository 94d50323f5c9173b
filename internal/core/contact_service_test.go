package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jusgestor-backend-go/internal/models"
)

func newContactFixture() (ContactService, *fakeContactRepo) {
	users := newFakeUserRepo()
	offices := newFakeOfficeRepo()
	offices.offices["office-1"] = &models.Office{ID: "office-1", Name: "Silva & Associados"}
	contacts := newFakeContactRepo()
	seedUser(users, "master-1", "master", "office-1")
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	seedUser(users, "secretary-1", "secretary", "office-1")
	seedUser(users, "master-2", "master", "office-2")
	svc := NewContactService(contacts, offices, testResolver(users))
	return svc, contacts
}

func submitContact(t *testing.T, svc ContactService) *models.ContactRequest {
	t.Helper()
	cr, err := svc.Submit(context.Background(), models.SubmitContactRequest{
		OfficeID: "office-1",
		Name:     "Maria",
		Email:    "maria@example.com",
		Message:  "Preciso de orientação trabalhista",
	})
	require.NoError(t, err)
	return cr
}

func TestSubmitContactStartsAsNovo(t *testing.T) {
	svc, _ := newContactFixture()
	cr := submitContact(t, svc)
	assert.Equal(t, models.ContactNovo, cr.Status)
	assert.Equal(t, "office-1", cr.OfficeID)
}

func TestSubmitContactRequiresExistingOffice(t *testing.T) {
	svc, contacts := newContactFixture()

	_, err := svc.Submit(context.Background(), models.SubmitContactRequest{
		OfficeID: "no-such-office",
		Name:     "Maria",
		Email:    "maria@example.com",
		Message:  "oi",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, contacts.writes)
}

func TestContactTriageIsMasterOnly(t *testing.T) {
	svc, _ := newContactFixture()
	cr := submitContact(t, svc)

	err := svc.MarkHandled(context.Background(), "secretary-1", cr.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.MarkHandled(context.Background(), "master-1", cr.ID))

	list, err := svc.List(context.Background(), "master-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ContactAtendido, list[0].Status)
}

func TestContactListDeniedToLawyers(t *testing.T) {
	svc, _ := newContactFixture()
	submitContact(t, svc)

	_, err := svc.List(context.Background(), "lawyer-1")
	assert.ErrorIs(t, err, ErrForbidden)

	// Secretaries triage the inbox read-only.
	list, err := svc.List(context.Background(), "secretary-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMarkHandledCrossOfficeIsNotFound(t *testing.T) {
	svc, _ := newContactFixture()
	cr := submitContact(t, svc)

	err := svc.MarkHandled(context.Background(), "master-2", cr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
