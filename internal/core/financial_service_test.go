package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jusgestor-backend-go/internal/models"
)

func newFinancialFixture() (FinancialService, *fakeFinancialRepo) {
	users := newFakeUserRepo()
	tasks := newFakeFinancialRepo()
	seedUser(users, "master-1", "master", "office-1")
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	seedUser(users, "secretary-1", "secretary", "office-1")
	seedUser(users, "master-2", "master", "office-2")
	svc := NewFinancialService(tasks, testResolver(users))
	return svc, tasks
}

func createTask(t *testing.T, svc FinancialService) *models.FinancialTask {
	t.Helper()
	task, err := svc.Create(context.Background(), "master-1", models.CreateFinancialTaskRequest{
		Title:   "Honorários iniciais",
		Type:    "receita",
		DueDate: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Value:   2500,
	})
	require.NoError(t, err)
	return task
}

func TestFinancialModuleIsClosedToLawyers(t *testing.T) {
	svc, tasks := newFinancialFixture()
	task := createTask(t, svc)

	_, err := svc.List(context.Background(), "lawyer-1")
	assert.ErrorIs(t, err, ErrForbidden)

	writes := tasks.writes
	_, err = svc.Create(context.Background(), "lawyer-1", models.CreateFinancialTaskRequest{
		Title: "x", Type: "despesa", DueDate: time.Now(), Value: 1,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ToggleStatus(context.Background(), "lawyer-1", task.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, writes, tasks.writes)
}

func TestSecretaryTogglesButCannotManage(t *testing.T) {
	svc, _ := newFinancialFixture()
	task := createTask(t, svc)

	toggled, err := svc.ToggleStatus(context.Background(), "secretary-1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FinancialPago, toggled.Status)

	toggled, err = svc.ToggleStatus(context.Background(), "secretary-1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FinancialPendente, toggled.Status)

	_, err = svc.Update(context.Background(), "secretary-1", task.ID, models.UpdateFinancialTaskRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
	err = svc.Delete(context.Background(), "secretary-1", task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := svc.List(context.Background(), "secretary-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateTaskValidatesTypeAndValue(t *testing.T) {
	svc, _ := newFinancialFixture()

	_, err := svc.Create(context.Background(), "master-1", models.CreateFinancialTaskRequest{
		Title: "x", Type: "emprestimo", DueDate: time.Now(), Value: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "master-1", models.CreateFinancialTaskRequest{
		Title: "x", Type: "receita", DueDate: time.Now(), Value: -5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFinancialCrossOfficeIsNotFound(t *testing.T) {
	svc, _ := newFinancialFixture()
	task := createTask(t, svc)

	_, err := svc.ToggleStatus(context.Background(), "master-2", task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
