package auth

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Firebase verifies ID tokens issued by Firebase Authentication and manages
// the accounts behind them.
type Firebase struct {
	client *fbauth.Client
}

// NewFirebase builds a client from a base64-encoded service account JSON.
func NewFirebase(ctx context.Context, serviceKeyB64 string) (*Firebase, error) {
	creds, err := base64.StdEncoding.DecodeString(serviceKeyB64)
	if err != nil {
		return nil, fmt.Errorf("decode firebase service key: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}

	return &Firebase{client: client}, nil
}

func (f *Firebase) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}

func (f *Firebase) DeleteUserByEmail(ctx context.Context, email string) error {
	record, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return ErrIdentityNotFound
		}
		return fmt.Errorf("lookup firebase user: %w", err)
	}

	if err := f.client.DeleteUser(ctx, record.UID); err != nil {
		if fbauth.IsUserNotFound(err) {
			return ErrIdentityNotFound
		}
		return fmt.Errorf("delete firebase user: %w", err)
	}
	return nil
}
