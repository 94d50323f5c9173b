package core

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

// teamService implements TeamService.
type teamService struct {
	users    db.UserRepository
	offices  db.OfficeRepository
	auth     db.AuthProvider
	mailer   InviteMailer
	resolver *IdentityResolver
	logger   *zap.Logger
}

// NewTeamService creates a TeamService. mailer may be nil, in which
// case no invite notification is sent.
func NewTeamService(
	users db.UserRepository,
	offices db.OfficeRepository,
	auth db.AuthProvider,
	mailer InviteMailer,
	resolver *IdentityResolver,
	logger *zap.Logger,
) TeamService {
	return &teamService{
		users:    users,
		offices:  offices,
		auth:     auth,
		mailer:   mailer,
		resolver: resolver,
		logger:   logger,
	}
}

const tempPasswordLen = 16

// temp passwords draw from a mixed alphabet with no ambiguous glyphs
// since they are read out loud or copied by hand.
const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%"

func generateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate temporary password: %w", err)
	}
	for i, b := range buf {
		buf[i] = tempPasswordAlphabet[int(b)%len(tempPasswordAlphabet)]
	}
	return string(buf), nil
}

// Invite creates an identity and a user document for a new member of
// the caller's office. The generated temporary password is returned
// exactly once and persisted nowhere but the identity provider's own
// credential store.
func (s *teamService) Invite(ctx context.Context, callerUID string, req models.InviteRequest) (*models.User, string, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, "", err
	}
	if !caller.Can(authz.ActionTeamInvite) {
		return nil, "", fmt.Errorf("%w: only the office master can invite members", ErrForbidden)
	}

	role := authz.Normalize(req.Role)
	if string(role) != req.Role || !authz.Invitable(role) {
		return nil, "", fmt.Errorf("%w: role must be lawyer or secretary", ErrInvalidInput)
	}
	if req.Email == "" || req.FullName == "" {
		return nil, "", fmt.Errorf("%w: email and full name are required", ErrInvalidInput)
	}

	// Collision check against the identity provider before any write.
	_, err = s.auth.LookupByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, "", fmt.Errorf("%w: %s", ErrEmailInUse, req.Email)
	case errors.Is(err, db.ErrNotFound):
		// Free to invite.
	default:
		return nil, "", fmt.Errorf("%w: identity provider lookup: %v", ErrUpstream, err)
	}

	office, err := s.offices.GetByID(ctx, caller.OfficeID)
	if err != nil {
		return nil, "", storeErr(err, "office")
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	uid, err := s.auth.CreateUser(ctx, req.Email, tempPassword, req.FullName)
	if err != nil {
		return nil, "", fmt.Errorf("%w: identity provider: %v", ErrUpstream, err)
	}

	member := &models.User{
		ID:         uid,
		FullName:   req.FullName,
		Email:      req.Email,
		Role:       role,
		OfficeID:   caller.OfficeID,
		OfficeName: office.Name,
	}
	if err := s.users.Create(ctx, member); err != nil {
		if delErr := s.auth.DeleteUser(ctx, uid); delErr != nil {
			s.logger.Warn("failed to roll back auth user after invite doc failure",
				zap.String("uid", uid), zap.Error(delErr))
		}
		return nil, "", fmt.Errorf("%w: create member profile: %v", ErrUpstream, err)
	}

	if s.mailer != nil {
		if mailErr := s.mailer.SendInvite(ctx, req.Email, req.FullName, office.Name); mailErr != nil {
			s.logger.Warn("invite email failed",
				zap.String("email", req.Email), zap.Error(mailErr))
		}
	}

	return member, tempPassword, nil
}

func (s *teamService) ListMembers(ctx context.Context, callerUID string) ([]*models.User, error) {
	caller, err := s.resolver.Resolve(ctx, callerUID)
	if err != nil {
		return nil, err
	}
	if !caller.Can(authz.ActionTeamView) {
		return nil, fmt.Errorf("%w: team roster", ErrForbidden)
	}

	members, err := s.users.ListByOffice(ctx, caller.OfficeID)
	if err != nil {
		return nil, storeErr(err, "team roster")
	}
	return members, nil
}
