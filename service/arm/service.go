// Package arm implements the resource group and deployment facade on top of
// the Azure Resource Manager API.
package arm

import (
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-arm-api/pkg/template"
)

const (
	// DefaultTemplateURI is the web app with SQL database quickstart template.
	DefaultTemplateURI = "https://raw.githubusercontent.com/Azure/azure-quickstart-templates/master/201-web-app-sql-database/azuredeploy.json"
	// DefaultParametersURI is the parameter file of DefaultTemplateURI.
	DefaultParametersURI = "https://raw.githubusercontent.com/Azure/azure-quickstart-templates/master/201-web-app-sql-database/azuredeploy.parameters.json"
)

type Config struct {
	API       API
	Logger    micrologger.Logger
	Templates *template.Store

	// SQLAdministratorLogin and SQLAdministratorLoginPassword are the
	// credentials of the SQL server deployed by
	// DeployFromTemplateLinkAndEmbeddedParams.
	SQLAdministratorLogin         string
	SQLAdministratorLoginPassword string
	// TemplateURI and ParametersURI are the links deployed by
	// DeployFromLinks. TemplateURI is also the template of
	// DeployFromTemplateLinkAndEmbeddedParams. Both default to the web app with
	// SQL database quickstart.
	TemplateURI   string
	ParametersURI string
}

// Service is the resource group and deployment facade. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	api       API
	logger    micrologger.Logger
	templates *template.Store

	sqlAdministratorLogin         string
	sqlAdministratorLoginPassword string
	templateURI                   string
	parametersURI                 string
}

func New(config Config) (*Service, error) {
	if config.API == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.API must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Templates == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Templates must not be empty", config)
	}

	if config.SQLAdministratorLogin == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.SQLAdministratorLogin must not be empty", config)
	}
	if config.SQLAdministratorLoginPassword == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.SQLAdministratorLoginPassword must not be empty", config)
	}
	if config.TemplateURI == "" {
		config.TemplateURI = DefaultTemplateURI
	}
	if config.ParametersURI == "" {
		config.ParametersURI = DefaultParametersURI
	}

	s := &Service{
		api:       config.API,
		logger:    config.Logger,
		templates: config.Templates,

		sqlAdministratorLogin:         config.SQLAdministratorLogin,
		sqlAdministratorLoginPassword: config.SQLAdministratorLoginPassword,
		templateURI:                   config.TemplateURI,
		parametersURI:                 config.ParametersURI,
	}

	return s, nil
}
