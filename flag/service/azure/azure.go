package azure

import "github.com/giantswarm/azure-arm-api/flag/service/azure/token"

type Azure struct {
	ClientID        string
	ClientSecret    string
	EnvironmentName string
	PartnerID       string
	SubscriptionID  string
	TenantID        string
	Token           token.Token
}
