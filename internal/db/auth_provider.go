package db

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// AuthProvider abstracts the identity-provider operations the services
// need so that the invite/signup flows can be tested without Firebase.
type AuthProvider interface {
	// CreateUser provisions an identity and returns its UID.
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	// LookupByEmail returns the UID for an email, or ErrNotFound.
	LookupByEmail(ctx context.Context, email string) (string, error)
	// UpdatePassword replaces the credential of an existing identity.
	UpdatePassword(ctx context.Context, uid, newPassword string) error
	// DeleteUser removes an identity. Used to roll back a half-created
	// signup when the office or user document write fails.
	DeleteUser(ctx context.Context, uid string) error
}

// firebaseAuthProvider implements AuthProvider over the Firebase Admin
// SDK auth client.
type firebaseAuthProvider struct {
	client *auth.Client
}

// NewFirebaseAuthProvider wraps a Firebase auth client.
func NewFirebaseAuthProvider(client *auth.Client) AuthProvider {
	return &firebaseAuthProvider{client: client}
}

func (p *firebaseAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false).
		Disabled(false)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create auth user for '%s': %w", email, err)
	}
	return record.UID, nil
}

func (p *firebaseAuthProvider) LookupByEmail(ctx context.Context, email string) (string, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", fmt.Errorf("auth user '%s': %w", email, ErrNotFound)
		}
		return "", fmt.Errorf("failed to look up auth user '%s': %w", email, err)
	}
	return record.UID, nil
}

func (p *firebaseAuthProvider) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).Password(newPassword)
	if _, err := p.client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("failed to update password for uid '%s': %w", uid, err)
	}
	return nil
}

func (p *firebaseAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete auth user '%s': %w", uid, err)
	}
	return nil
}
