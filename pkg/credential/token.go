package credential

import (
	"context"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/adal"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/giantswarm/microerror"
)

type TokenConfig struct {
	Credentials auth.ClientCredentialsConfig
	Environment azure.Environment
	// RefreshWithin is the window before expiry in which the token is
	// renewed ahead of the next request. Zero keeps the adal default.
	RefreshWithin time.Duration
	// Sender is used for requests against the token endpoint. Tests use it to
	// point the exchange at a local server.
	Sender adal.Sender
}

// Token is the service principal token of one session. It is acquired when
// the Token is created and renewed on demand afterwards.
type Token struct {
	spt *adal.ServicePrincipalToken
}

// NewToken performs the initial token exchange. Failing authentication is
// returned as *AuthenticationError.
func NewToken(ctx context.Context, config TokenConfig) (*Token, error) {
	if config.Credentials.ClientID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.ClientID must not be empty", config)
	}
	if config.Credentials.ClientSecret == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.ClientSecret must not be empty", config)
	}
	if config.Credentials.TenantID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Credentials.TenantID must not be empty", config)
	}
	if config.Environment.ActiveDirectoryEndpoint == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Environment.ActiveDirectoryEndpoint must not be empty", config)
	}
	if config.Environment.ResourceManagerEndpoint == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Environment.ResourceManagerEndpoint must not be empty", config)
	}
	if config.RefreshWithin < 0 {
		return nil, microerror.Maskf(invalidConfigError, "%T.RefreshWithin must not be negative", config)
	}

	credentials := config.Credentials
	credentials.AADEndpoint = config.Environment.ActiveDirectoryEndpoint
	credentials.Resource = config.Environment.ResourceManagerEndpoint

	spt, err := credentials.ServicePrincipalToken()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	if config.Sender != nil {
		spt.SetSender(config.Sender)
	}
	if config.RefreshWithin > 0 {
		spt.SetRefreshWithin(config.RefreshWithin)
	}
	spt.SetAutoRefresh(true)

	err = spt.RefreshWithContext(ctx)
	if err != nil {
		return nil, microerror.Mask(newAuthenticationError(err))
	}

	t := &Token{
		spt: spt,
	}

	return t, nil
}

// Authorizer returns a bearer authorizer which renews the token before a
// request whenever it expires within the refresh window.
func (t *Token) Authorizer() autorest.Authorizer {
	return autorest.NewBearerAuthorizer(t.spt)
}

// EnsureFresh renews the token when it expires within the refresh window.
func (t *Token) EnsureFresh(ctx context.Context) error {
	err := t.spt.EnsureFreshWithContext(ctx)
	if err != nil {
		return microerror.Mask(newAuthenticationError(err))
	}

	return nil
}

func (t *Token) ExpiresOn() time.Time {
	return t.spt.Token().Expires()
}
