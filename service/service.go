package service

import (
	"context"
	"sync"
	"time"

	"github.com/giantswarm/microendpoint/service/version"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/giantswarm/versionbundle"
	"github.com/spf13/viper"

	"github.com/giantswarm/azure-arm-api/client"
	"github.com/giantswarm/azure-arm-api/flag"
	"github.com/giantswarm/azure-arm-api/pkg/credential"
	"github.com/giantswarm/azure-arm-api/pkg/project"
	"github.com/giantswarm/azure-arm-api/pkg/template"
	"github.com/giantswarm/azure-arm-api/service/arm"
	"github.com/giantswarm/azure-arm-api/service/collector"
	"github.com/giantswarm/azure-arm-api/service/healthz"
)

const (
	envSQLAdministratorLogin         = "ARM_SQL_ADMINISTRATOR_LOGIN"
	envSQLAdministratorLoginPassword = "ARM_SQL_ADMINISTRATOR_LOGIN_PASSWORD"
)

// Config represents the configuration used to create a new service.
type Config struct {
	Logger micrologger.Logger

	Flag  *flag.Flag
	Viper *viper.Viper

	Description string
	GitCommit   string
	ProjectName string
	Source      string
	Version     string
}

type Service struct {
	ARM     *arm.Service
	Healthz *healthz.Service
	Version *version.Service

	bootOnce     sync.Once
	collectorSet *collector.Set
}

// New creates a new configured service object. It authenticates against
// Azure Active Directory right away and fails when the credentials are
// rejected.
func New(config Config) (*Service, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Flag == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Flag must not be empty", config)
	}
	if config.Viper == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Viper must not be empty", config)
	}
	if config.Description == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Description must not be empty", config)
	}
	if config.GitCommit == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.GitCommit must not be empty", config)
	}
	if config.ProjectName == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.ProjectName must not be empty", config)
	}
	if config.Source == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Source must not be empty", config)
	}

	var err error

	ctx := context.Background()
	f := config.Flag.Service
	v := config.Viper

	err = v.BindEnv(f.ARM.SQL.AdministratorLogin, envSQLAdministratorLogin)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	err = v.BindEnv(f.ARM.SQL.AdministratorLoginPassword, envSQLAdministratorLoginPassword)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	var refreshWithin time.Duration
	if s := v.GetString(f.Azure.Token.RefreshWithin); s != "" {
		refreshWithin, err = time.ParseDuration(s)
		if err != nil {
			return nil, microerror.Maskf(invalidConfigError, "%s must be a duration: %s", f.Azure.Token.RefreshWithin, err)
		}
	}

	credentials, err := credential.NewAzureCredentials(
		v.GetString(f.Azure.ClientID),
		v.GetString(f.Azure.ClientSecret),
		v.GetString(f.Azure.TenantID),
	)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	environment, err := credential.Environment(v.GetString(f.Azure.EnvironmentName))
	if err != nil {
		return nil, microerror.Mask(err)
	}

	var token *credential.Token
	{
		c := credential.TokenConfig{
			Credentials:   credentials,
			Environment:   environment,
			RefreshWithin: refreshWithin,
		}

		token, err = credential.NewToken(ctx, c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var azureAPIMetrics *collector.AzureAPIMetricsCollector
	{
		c := collector.AzureAPIMetricsConfig{
			Logger: config.Logger,
		}

		azureAPIMetrics, err = collector.NewAzureAPIMetricsCollector(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var clientSet *client.AzureClientSet
	{
		c := client.AzureClientSetConfig{
			Authorizer:     token.Authorizer(),
			Environment:    environment,
			Metrics:        azureAPIMetrics,
			PartnerID:      v.GetString(f.Azure.PartnerID),
			SubscriptionID: v.GetString(f.Azure.SubscriptionID),
		}

		clientSet, err = client.NewAzureClientSet(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var templateStore *template.Store
	{
		c := template.StoreConfig{
			Logger: config.Logger,
		}

		templateStore, err = template.NewStore(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var armService *arm.Service
	{
		c := arm.Config{
			API:       arm.NewAPI(clientSet),
			Logger:    config.Logger,
			Templates: templateStore,

			SQLAdministratorLogin:         v.GetString(f.ARM.SQL.AdministratorLogin),
			SQLAdministratorLoginPassword: v.GetString(f.ARM.SQL.AdministratorLoginPassword),
			TemplateURI:                   v.GetString(f.ARM.Template.URI),
			ParametersURI:                 v.GetString(f.ARM.Template.ParametersURI),
		}

		armService, err = arm.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var healthzService *healthz.Service
	{
		c := healthz.Config{
			GroupsClient: clientSet.GroupsClient,
			Logger:       config.Logger,
		}

		healthzService, err = healthz.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var collectorSet *collector.Set
	{
		c := collector.SetConfig{
			AzureAPIMetrics:   azureAPIMetrics,
			DeploymentsClient: clientSet.DeploymentsClient,
			GroupsClient:      clientSet.GroupsClient,
			Logger:            config.Logger,
			Token:             token,

			ClientID:          credentials.ClientID,
			DeploymentTagName: arm.DeploymentNameTag,
			SubscriptionID:    clientSet.SubscriptionID,
		}

		collectorSet, err = collector.NewSet(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var versionService *version.Service
	{
		c := version.Config{
			Description:    config.Description,
			GitCommit:      config.GitCommit,
			Name:           config.ProjectName,
			Source:         config.Source,
			Version:        config.Version,
			VersionBundles: []versionbundle.Bundle{project.NewVersionBundle()},
		}

		versionService, err = version.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	s := &Service{
		ARM:     armService,
		Healthz: healthzService,
		Version: versionService,

		bootOnce:     sync.Once{},
		collectorSet: collectorSet,
	}

	return s, nil
}

func (s *Service) Boot(ctx context.Context) {
	s.bootOnce.Do(func() {
		go s.collectorSet.Boot(ctx) // nolint: errcheck
	})
}
