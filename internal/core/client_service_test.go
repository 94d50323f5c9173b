package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jusgestor-backend-go/internal/models"
)

func newClientFixture() (ClientService, *fakeUserRepo, *fakeClientRepo) {
	users := newFakeUserRepo()
	clients := newFakeClientRepo()
	seedUser(users, "master-1", "master", "office-1")
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	seedUser(users, "secretary-1", "secretary", "office-1")
	seedUser(users, "master-2", "master", "office-2")
	svc := NewClientService(clients, testResolver(users))
	return svc, users, clients
}

func TestCreateClientStampsOfficeAndAuthor(t *testing.T) {
	svc, _, _ := newClientFixture()

	client, err := svc.Create(context.Background(), "lawyer-1", models.CreateClientRequest{
		Name: "João Pereira",
		CPF:  "123.456.789-00",
	})
	require.NoError(t, err)
	assert.Equal(t, "office-1", client.OfficeID)
	assert.Equal(t, "lawyer-1", client.CreatedBy)
}

func TestSecretaryCannotCreateClient(t *testing.T) {
	svc, _, clients := newClientFixture()

	_, err := svc.Create(context.Background(), "secretary-1", models.CreateClientRequest{Name: "X"})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, clients.writes, "denied create must not write")
}

func TestCrossOfficeClientReadsAsNotFound(t *testing.T) {
	svc, _, _ := newClientFixture()

	client, err := svc.Create(context.Background(), "master-1", models.CreateClientRequest{Name: "João"})
	require.NoError(t, err)

	// Another office's master sees nothing, not a permission error.
	_, err = svc.Get(context.Background(), "master-2", client.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), "master-2", client.ID, models.UpdateClientRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), "master-2", client.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOnlyMasterDeletesClients(t *testing.T) {
	svc, _, _ := newClientFixture()

	client, err := svc.Create(context.Background(), "lawyer-1", models.CreateClientRequest{Name: "João"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "lawyer-1", client.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), "master-1", client.ID)
	assert.NoError(t, err)
}

func TestUpdateClientMergesPointerFields(t *testing.T) {
	svc, _, _ := newClientFixture()

	client, err := svc.Create(context.Background(), "lawyer-1", models.CreateClientRequest{
		Name:  "João",
		Phone: "11 99999-0000",
	})
	require.NoError(t, err)

	email := "joao@example.com"
	updated, err := svc.Update(context.Background(), "lawyer-1", client.ID, models.UpdateClientRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", updated.Email)
	assert.Equal(t, "11 99999-0000", updated.Phone)
}

func TestListClientsScopedToOffice(t *testing.T) {
	svc, _, _ := newClientFixture()

	_, err := svc.Create(context.Background(), "master-1", models.CreateClientRequest{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "master-2", models.CreateClientRequest{Name: "B"})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "secretary-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
}
