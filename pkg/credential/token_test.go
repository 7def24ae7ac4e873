package credential

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/giantswarm/microerror"
)

const (
	testTenantID = "tenantID"
)

func newTokenServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	var calls int32

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/"+testTenantID+"/oauth2/token") {
			t.Errorf("unexpected token path %#q", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	return s, &calls
}

func newTestTokenConfig(s *httptest.Server) TokenConfig {
	return TokenConfig{
		Credentials: auth.NewClientCredentialsConfig("clientID", "clientSecret", testTenantID),
		Environment: azure.Environment{
			ActiveDirectoryEndpoint: s.URL + "/",
			ResourceManagerEndpoint: "https://management.azure.com/",
		},
		RefreshWithin: 10 * time.Minute,
		Sender:        s.Client(),
	}
}

func TestNewTokenAcquiresTokenOnConstruction(t *testing.T) {
	expiresOn := time.Now().Add(time.Hour).Unix()
	body := fmt.Sprintf(`{"access_token":"secret","expires_in":"3600","expires_on":"%d","not_before":"%d","resource":"https://management.azure.com/","token_type":"Bearer"}`, expiresOn, time.Now().Unix())

	s, calls := newTokenServer(t, http.StatusOK, body)
	defer s.Close()

	token, err := NewToken(context.Background(), newTestTokenConfig(s))
	if err != nil {
		t.Fatal(err)
	}

	if atomic.LoadInt32(calls) != 1 {
		t.Fatalf("expected 1 token request, got %d", atomic.LoadInt32(calls))
	}
	if token.ExpiresOn().Unix() != expiresOn {
		t.Fatalf("expected expiry %d, got %d", expiresOn, token.ExpiresOn().Unix())
	}

	// The token is valid for an hour, far outside the refresh window.
	err = token.EnsureFresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(calls) != 1 {
		t.Fatalf("expected fresh token to be reused, got %d token requests", atomic.LoadInt32(calls))
	}
}

func TestTokenIsRenewedWithinRefreshWindow(t *testing.T) {
	// Expires in five minutes, inside the ten minute refresh window.
	expiresOn := time.Now().Add(5 * time.Minute).Unix()
	body := fmt.Sprintf(`{"access_token":"secret","expires_in":"300","expires_on":"%d","not_before":"%d","resource":"https://management.azure.com/","token_type":"Bearer"}`, expiresOn, time.Now().Unix())

	s, calls := newTokenServer(t, http.StatusOK, body)
	defer s.Close()

	token, err := NewToken(context.Background(), newTestTokenConfig(s))
	if err != nil {
		t.Fatal(err)
	}

	err = token.EnsureFresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(calls) != 2 {
		t.Fatalf("expected token to be renewed, got %d token requests", atomic.LoadInt32(calls))
	}
}

func TestNewTokenFailsOnRejectedCredentials(t *testing.T) {
	s, _ := newTokenServer(t, http.StatusUnauthorized, `{"error":"invalid_client","error_description":"AADSTS7000215: Invalid client secret is provided."}`)
	defer s.Close()

	_, err := NewToken(context.Background(), newTestTokenConfig(s))
	if !IsAuthenticationFailed(err) {
		t.Fatalf("expected authentication error, got %#v", err)
	}

	aErr := microerror.Cause(err).(*AuthenticationError)
	if aErr.Code != "401" {
		t.Fatalf("expected code %#q, got %#q", "401", aErr.Code)
	}
	if !strings.Contains(aErr.Error(), "invalid_client") {
		t.Fatalf("expected provider message in error, got %#q", aErr.Error())
	}
}

func TestNewTokenValidatesConfig(t *testing.T) {
	_, err := NewToken(context.Background(), TokenConfig{})
	if !IsInvalidConfig(err) {
		t.Fatalf("expected invalid config error, got %#v", err)
	}
}
