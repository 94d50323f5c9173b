package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
	"jusgestor-backend-go/internal/storage"
)

// accountService implements AccountService.
type accountService struct {
	users    db.UserRepository
	offices  db.OfficeRepository
	auth     db.AuthProvider
	uploader storage.Uploader
	resolver *IdentityResolver
	logger   *zap.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(
	users db.UserRepository,
	offices db.OfficeRepository,
	auth db.AuthProvider,
	uploader storage.Uploader,
	resolver *IdentityResolver,
	logger *zap.Logger,
) AccountService {
	return &accountService{
		users:    users,
		offices:  offices,
		auth:     auth,
		uploader: uploader,
		resolver: resolver,
		logger:   logger,
	}
}

// Signup creates the first account of a new office. The public flow is
// gated: once any master exists anywhere in the store, signup is
// closed and members join by invitation only.
func (s *accountService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if strings.TrimSpace(req.OfficeName) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: office name and full name are required", ErrInvalidInput)
	}
	if req.Email == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: email and a password of at least 8 characters are required", ErrInvalidInput)
	}

	exists, err := s.users.MasterExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: signup gate check: %v", ErrUpstream, err)
	}
	if exists {
		return nil, ErrOfficeExists
	}

	uid, err := s.auth.CreateUser(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, fmt.Errorf("%w: identity provider: %v", ErrUpstream, err)
	}

	office := &models.Office{Name: req.OfficeName}
	officeID, err := s.offices.Create(ctx, office)
	if err != nil {
		// Roll back the half-created identity so the email can retry.
		if delErr := s.auth.DeleteUser(ctx, uid); delErr != nil {
			s.logger.Warn("failed to roll back auth user after office create failure",
				zap.String("uid", uid), zap.Error(delErr))
		}
		return nil, fmt.Errorf("%w: create office: %v", ErrUpstream, err)
	}

	user := &models.User{
		ID:         uid,
		FullName:   req.FullName,
		Email:      req.Email,
		Role:       authz.RoleMaster,
		OfficeID:   officeID,
		OfficeName: req.OfficeName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if delErr := s.auth.DeleteUser(ctx, uid); delErr != nil {
			s.logger.Warn("failed to roll back auth user after user doc create failure",
				zap.String("uid", uid), zap.Error(delErr))
		}
		return nil, fmt.Errorf("%w: create user profile: %v", ErrUpstream, err)
	}

	return user, nil
}

func (s *accountService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, storeErr(err, "user profile")
	}
	return user, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, uid string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, storeErr(err, "user profile")
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrInvalidInput)
		}
		user.FullName = *req.FullName
	}
	if req.OAB != nil {
		user.OAB = *req.OAB
	}
	if req.Specialties != nil {
		user.Specialties = *req.Specialties
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, storeErr(err, "update user profile")
	}
	s.resolver.Invalidate(ctx, uid)
	return user, nil
}

// ChangePassword updates the caller's own credential through the
// identity provider. Re-authentication happens client-side before the
// token used to reach this action was minted.
func (s *accountService) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must have at least 8 characters", ErrInvalidInput)
	}
	if err := s.auth.UpdatePassword(ctx, uid, newPassword); err != nil {
		return fmt.Errorf("%w: identity provider: %v", ErrUpstream, err)
	}
	return nil
}

// UploadProfilePhoto stores the photo and records its URL on the user
// document. If the metadata write fails the uploaded object is left
// behind; the caller sees a single upload error and may retry.
func (s *accountService) UploadProfilePhoto(ctx context.Context, uid, filename, contentType string, r io.Reader) (string, error) {
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return "", storeErr(err, "user profile")
	}

	path := storage.ProfilePhotoPath(uid, filename)
	url, err := s.uploader.Upload(ctx, path, contentType, r)
	if err != nil {
		return "", fmt.Errorf("%w: photo upload: %v", ErrUpstream, err)
	}

	user.PhotoURL = url
	if err := s.users.Update(ctx, user); err != nil {
		return "", fmt.Errorf("%w: photo metadata update: %v", ErrUpstream, err)
	}
	s.resolver.Invalidate(ctx, uid)
	return url, nil
}
