package collector

import (
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelApplicationID = "application_id"
)

var (
	tokenExpirationDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "service_principal_token", "expiration"),
		"Expiration date of the Azure access token as unix timestamp.",
		[]string{
			labelSubscriptionID,
			labelApplicationID,
		},
		nil,
	)
)

// Token is implemented by *credential.Token.
type Token interface {
	ExpiresOn() time.Time
}

type TokenExpirationConfig struct {
	Logger micrologger.Logger
	Token  Token

	ClientID       string
	SubscriptionID string
}

type TokenExpiration struct {
	logger micrologger.Logger
	token  Token

	clientID       string
	subscriptionID string
}

func NewTokenExpiration(config TokenExpirationConfig) (*TokenExpiration, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Token == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Token must not be empty", config)
	}

	if config.ClientID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.ClientID must not be empty", config)
	}
	if config.SubscriptionID == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.SubscriptionID must not be empty", config)
	}

	t := &TokenExpiration{
		logger: config.Logger,
		token:  config.Token,

		clientID:       config.ClientID,
		subscriptionID: config.SubscriptionID,
	}

	return t, nil
}

func (t *TokenExpiration) Collect(ch chan<- prometheus.Metric) error {
	ch <- prometheus.MustNewConstMetric(
		tokenExpirationDesc,
		prometheus.GaugeValue,
		float64(t.token.ExpiresOn().Unix()),
		t.subscriptionID,
		t.clientID,
	)

	return nil
}

func (t *TokenExpiration) Describe(ch chan<- *prometheus.Desc) error {
	ch <- tokenExpirationDesc
	return nil
}
