// Package oidcpw implements the identity provider against an OIDC issuer
// using the resource-owner password grant. It fits identity services that
// expose email/password sign-in over OAuth2 token endpoints.
package oidcpw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
)

// ProviderConfig holds configuration for the password-grant OIDC provider.
// DisplayNamePath and AvatarPath are JMESPath expressions evaluated against
// the ID token claims; issuers disagree on where profile metadata lives, so
// the path is configuration rather than code.
type ProviderConfig struct {
	IssuerURL       string
	ClientID        string
	ClientSecret    string
	Scope           string
	DisplayNamePath string
	AvatarPath      string
	HTTPClient      *http.Client // Optional, defaults to a 30s-timeout client
}

// Provider implements ports.IdentityProvider over an OIDC issuer.
type Provider struct {
	config       *oauth2.Config
	httpClient   *http.Client
	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier

	displayNamePath string
	avatarPath      string
}

const defaultSessionDuration = 8 * time.Hour

// NewProvider creates a new password-grant OIDC provider. Discovery happens
// once at construction.
func NewProvider(ctx context.Context, cfg ProviderConfig) (*Provider, error) {
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.DisplayNamePath != "" {
		if _, err := jmespath.Compile(cfg.DisplayNamePath); err != nil {
			return nil, fmt.Errorf("compile display name path: %w", err)
		}
	}
	if cfg.AvatarPath != "" {
		if _, err := jmespath.Compile(cfg.AvatarPath); err != nil {
			return nil, fmt.Errorf("compile avatar path: %w", err)
		}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(cfg.IssuerURL, "/")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	scope := cfg.Scope
	if scope == "" {
		scope = "openid profile email"
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       strings.Fields(scope),
			Endpoint:     op.Endpoint(),
		},
		httpClient:      httpClient,
		oidcProvider:    op,
		verifier:        op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
		displayNamePath: cfg.DisplayNamePath,
		avatarPath:      cfg.AvatarPath,
	}, nil
}

// SignIn exchanges the credentials at the token endpoint and verifies the
// returned ID token. Credential rejections map to ErrInvalidCredentials.
func (p *Provider) SignIn(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if email == "" || password == "" {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.config.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && credentialRejection(retrieveErr) {
			return domainauth.Identity{}, ports.ErrInvalidCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("password grant: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return domainauth.Identity{}, errors.New("missing id_token in token response")
	}
	idToken, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("verify id_token: %w", err)
	}

	var claims map[string]any
	if err := idToken.Claims(&claims); err != nil {
		return domainauth.Identity{}, fmt.Errorf("parse id_token claims: %w", err)
	}

	expiresAt := time.Now().Add(defaultSessionDuration)
	if !token.Expiry.IsZero() {
		expiresAt = token.Expiry
	}

	identity := domainauth.Identity{
		Subject:   idToken.Subject,
		Email:     stringClaim(claims, "email"),
		ExpiresAt: expiresAt,
	}
	if identity.Email == "" {
		identity.Email = email
	}
	identity.DisplayName = p.searchString(claims, p.displayNamePath)
	identity.AvatarURL = p.searchString(claims, p.avatarPath)
	return identity, nil
}

// SignOut revokes the provider-side credential. Token-endpoint-only issuers
// have nothing to revoke, so a missing revocation endpoint is not an error.
func (p *Provider) SignOut(ctx context.Context, subject string) error {
	var doc struct {
		RevocationEndpoint string `json:"revocation_endpoint"`
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := p.oidcProvider.Claims(&doc); err != nil {
		return fmt.Errorf("read discovery claims: %w", err)
	}
	if doc.EndSessionEndpoint == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, doc.EndSessionEndpoint, nil)
	if err != nil {
		return fmt.Errorf("build end session request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("end session: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (p *Provider) searchString(claims map[string]any, path string) string {
	if path == "" {
		return ""
	}
	v, err := jmespath.Search(path, claims)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}

// credentialRejection reports whether the token endpoint rejected the
// credentials themselves rather than failing for operational reasons.
func credentialRejection(err *oauth2.RetrieveError) bool {
	if err.Response != nil &&
		(err.Response.StatusCode == http.StatusBadRequest || err.Response.StatusCode == http.StatusUnauthorized) {
		var body struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(err.Body, &body); jsonErr == nil && body.Error == "invalid_grant" {
			return true
		}
		return err.Response.StatusCode == http.StatusUnauthorized
	}
	return false
}
