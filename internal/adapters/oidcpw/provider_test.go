package oidcpw

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func TestCredentialRejection(t *testing.T) {
	tests := []struct {
		name string
		err  *oauth2.RetrieveError
		want bool
	}{
		{
			name: "invalid_grant on 400",
			err: &oauth2.RetrieveError{
				Response: &http.Response{StatusCode: http.StatusBadRequest},
				Body:     []byte(`{"error":"invalid_grant","error_description":"wrong password"}`),
			},
			want: true,
		},
		{
			name: "plain 401",
			err: &oauth2.RetrieveError{
				Response: &http.Response{StatusCode: http.StatusUnauthorized},
				Body:     []byte(`unauthorized`),
			},
			want: true,
		},
		{
			name: "server error is not a rejection",
			err: &oauth2.RetrieveError{
				Response: &http.Response{StatusCode: http.StatusInternalServerError},
				Body:     []byte(`{"error":"server_error"}`),
			},
			want: false,
		},
		{
			name: "400 without invalid_grant",
			err: &oauth2.RetrieveError{
				Response: &http.Response{StatusCode: http.StatusBadRequest},
				Body:     []byte(`{"error":"invalid_request"}`),
			},
			want: false,
		},
		{
			name: "no response",
			err:  &oauth2.RetrieveError{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, credentialRejection(tt.err))
		})
	}
}

func TestSearchString(t *testing.T) {
	p := &Provider{}
	claims := map[string]any{
		"user_metadata": map[string]any{
			"full_name":  "Sarah Johnson",
			"avatar_url": "https://cdn.example.com/a.png",
		},
		"exp": 1234,
	}

	assert.Equal(t, "Sarah Johnson", p.searchString(claims, "user_metadata.full_name"))
	assert.Equal(t, "https://cdn.example.com/a.png", p.searchString(claims, "user_metadata.avatar_url"))
	assert.Empty(t, p.searchString(claims, "user_metadata.missing"))
	assert.Empty(t, p.searchString(claims, "exp"), "non-string claim values are ignored")
	assert.Empty(t, p.searchString(claims, ""))
}
