package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/accesstoken"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
)

// Access token plaintext prefixes. Organization tokens are bound to exactly
// one organization; account tokens carry no organization.
const (
	TokenPrefixOrg     = "org_"
	TokenPrefixAccount = "acc_"
)

// TokenService implements access token lifecycle and resolution. Tokens are
// stored encrypted; the deterministic cipher makes equality lookup of a
// presented plaintext possible.
type TokenService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewTokenService creates a TokenService.
func NewTokenService(client *ent.Client, cipher *crypto.Cipher) *TokenService {
	return &TokenService{client: client, cipher: cipher}
}

// CreatedToken is returned on creation only; Plaintext is never shown again.
type CreatedToken struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Plaintext      string    `json:"token"`
	CreatedAt      time.Time `json:"created_at"`
	Lifetime       int64     `json:"lifetime"`
}

// Create mints a token for the user. orgID empty makes an account token.
func (s *TokenService) Create(ctx context.Context, userID, orgID, name string, lifetime int64) (*CreatedToken, error) {
	if name == "" {
		return nil, Validationf("token name is required")
	}
	if lifetime < 0 {
		return nil, Validationf("token lifetime cannot be negative")
	}

	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	prefix := TokenPrefixAccount
	if orgID != "" {
		prefix = TokenPrefixOrg
	}
	plaintext := prefix + hex.EncodeToString(raw)

	encrypted, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypting token: %w", err)
	}

	row, err := s.client.AccessToken.Create().
		SetUserID(userID).
		SetOrganizationID(orgID).
		SetName(name).
		SetToken(encrypted).
		SetLifetime(lifetime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}

	return &CreatedToken{
		ID:             row.ID,
		Name:           row.Name,
		OrganizationID: row.OrganizationID,
		Plaintext:      plaintext,
		CreatedAt:      row.CreatedAt,
		Lifetime:       row.Lifetime,
	}, nil
}

// List returns the user's tokens for one context: the organization's tokens
// when orgID is set, the account tokens otherwise. Token material is not
// included.
func (s *TokenService) List(ctx context.Context, userID, orgID string) ([]*ent.AccessToken, error) {
	rows, err := s.client.AccessToken.Query().
		Where(
			accesstoken.UserIDEQ(userID),
			accesstoken.OrganizationIDEQ(orgID),
		).
		Order(ent.Desc(accesstoken.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tokens: %w", err)
	}
	return rows, nil
}

// Delete removes one of the user's tokens.
func (s *TokenService) Delete(ctx context.Context, userID, tokenID string) error {
	n, err := s.client.AccessToken.Delete().
		Where(
			accesstoken.IDEQ(tokenID),
			accesstoken.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting token %s: %w", tokenID, err)
	}
	if n == 0 {
		return fmt.Errorf("token %s: %w", tokenID, ErrNotFound)
	}
	return nil
}

// Resolve looks up a presented plaintext token. Expired tokens resolve to
// ErrUnauthorized.
func (s *TokenService) Resolve(ctx context.Context, plaintext string) (*ent.AccessToken, error) {
	encrypted, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypting presented token: %w", err)
	}
	row, err := s.client.AccessToken.Query().
		Where(accesstoken.TokenEQ(encrypted)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("unknown access token: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("resolving token: %w", err)
	}
	if row.Lifetime > 0 {
		expiry := row.CreatedAt.Add(time.Duration(row.Lifetime) * time.Second)
		if time.Now().After(expiry) {
			return nil, fmt.Errorf("access token expired: %w", ErrUnauthorized)
		}
	}
	return row, nil
}
