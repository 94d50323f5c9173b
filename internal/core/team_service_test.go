package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/models"
)

func newTeamFixture() (TeamService, *fakeUserRepo, *fakeAuthProvider, *fakeMailer) {
	users := newFakeUserRepo()
	offices := newFakeOfficeRepo()
	offices.offices["office-1"] = &models.Office{ID: "office-1", Name: "Silva & Associados"}
	auth := newFakeAuthProvider()
	mailer := &fakeMailer{}
	seedUser(users, "master-1", "master", "office-1")
	seedUser(users, "lawyer-1", "lawyer", "office-1")
	seedUser(users, "secretary-1", "secretary", "office-1")
	svc := NewTeamService(users, offices, auth, mailer, testResolver(users), zap.NewNop())
	return svc, users, auth, mailer
}

func TestInviteCreatesMemberWithTempPassword(t *testing.T) {
	svc, users, _, mailer := newTeamFixture()

	member, tempPassword, err := svc.Invite(context.Background(), "master-1", models.InviteRequest{
		Email:    "novo@example.com",
		FullName: "Novo Advogado",
		Role:     "lawyer",
	})
	require.NoError(t, err)

	assert.Len(t, tempPassword, 16)
	assert.Equal(t, authz.RoleLawyer, member.Role)
	assert.Equal(t, "office-1", member.OfficeID)
	assert.Equal(t, "Silva & Associados", member.OfficeName)

	stored, err := users.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, "novo@example.com", stored.Email)

	assert.Equal(t, []string{"novo@example.com"}, mailer.sent)
}

func TestInviteDeniedForNonMasters(t *testing.T) {
	svc, users, auth, _ := newTeamFixture()

	for _, caller := range []string{"lawyer-1", "secretary-1"} {
		writes := users.writes
		_, _, err := svc.Invite(context.Background(), caller, models.InviteRequest{
			Email:    "x@example.com",
			FullName: "X",
			Role:     "secretary",
		})
		assert.ErrorIs(t, err, ErrForbidden, caller)
		assert.Equal(t, writes, users.writes, "denied invite must not write")
		assert.Empty(t, auth.created)
	}
}

func TestInviteRejectsMasterRole(t *testing.T) {
	svc, _, auth, _ := newTeamFixture()

	_, _, err := svc.Invite(context.Background(), "master-1", models.InviteRequest{
		Email:    "x@example.com",
		FullName: "X",
		Role:     "master",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, auth.created)
}

func TestInviteEmailCollisionCreatesNothing(t *testing.T) {
	svc, users, auth, _ := newTeamFixture()
	auth.byEmail["taken@example.com"] = "uid-existing"

	writes := users.writes
	_, _, err := svc.Invite(context.Background(), "master-1", models.InviteRequest{
		Email:    "taken@example.com",
		FullName: "Taken",
		Role:     "lawyer",
	})
	require.ErrorIs(t, err, ErrEmailInUse)
	assert.Equal(t, writes, users.writes)
	assert.Empty(t, auth.created)
}

func TestInviteSurvivesMailerFailure(t *testing.T) {
	svc, _, _, mailer := newTeamFixture()
	mailer.fail = true

	member, tempPassword, err := svc.Invite(context.Background(), "master-1", models.InviteRequest{
		Email:    "novo@example.com",
		FullName: "Novo",
		Role:     "secretary",
	})
	require.NoError(t, err, "mail delivery is best-effort")
	assert.NotEmpty(t, tempPassword)
	assert.Equal(t, authz.RoleSecretary, member.Role)
}

func TestListMembersScopedToOffice(t *testing.T) {
	svc, users, _, _ := newTeamFixture()
	seedUser(users, "outsider", "lawyer", "office-2")

	members, err := svc.ListMembers(context.Background(), "secretary-1")
	require.NoError(t, err)
	assert.Len(t, members, 3)
	for _, m := range members {
		assert.Equal(t, "office-1", m.OfficeID)
	}
}
