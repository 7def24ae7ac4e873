package credential

import (
	"strings"

	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/giantswarm/microerror"
)

const (
	// DefaultEnvironmentName is used when no cloud environment is configured.
	DefaultEnvironmentName = "AZUREPUBLICCLOUD"
)

var environmentNames = []string{
	"AZURECHINACLOUD",
	"AZUREGERMANCLOUD",
	DefaultEnvironmentName,
	"AZUREUSGOVERNMENTCLOUD",
}

// NewAzureCredentials returns a `ClientCredentialsConfig` configured taking values from Environment, but parameters
// have precedence over environment variables.
func NewAzureCredentials(clientID, clientSecret, tenantID string) (auth.ClientCredentialsConfig, error) {
	settings, err := auth.GetSettingsFromEnvironment()
	if err != nil {
		return auth.ClientCredentialsConfig{}, microerror.Mask(err)
	}
	if clientID != "" {
		settings.Values[auth.ClientID] = clientID
	}
	if clientSecret != "" {
		settings.Values[auth.ClientSecret] = clientSecret
	}
	if tenantID != "" {
		settings.Values[auth.TenantID] = tenantID
	}

	if settings.Values[auth.ClientID] == "" || settings.Values[auth.ClientSecret] == "" || settings.Values[auth.TenantID] == "" {
		return auth.ClientCredentialsConfig{}, microerror.Maskf(invalidConfigError, "credentials must not be empty")
	}

	return settings.GetClientCredentials()
}

// Environment resolves one of the public, government or sovereign Azure
// clouds by name. An empty name selects the public cloud.
func Environment(name string) (azure.Environment, error) {
	if name == "" {
		name = DefaultEnvironmentName
	}

	var known bool
	for _, n := range environmentNames {
		if strings.EqualFold(n, name) {
			known = true
			break
		}
	}
	if !known {
		return azure.Environment{}, microerror.Maskf(invalidConfigError, "unknown cloud environment %#q, expected one of %s", name, strings.Join(environmentNames, ", "))
	}

	env, err := azure.EnvironmentFromName(name)
	if err != nil {
		return azure.Environment{}, microerror.Mask(err)
	}

	return env, nil
}
