package main

import (
	"context"
	"fmt"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/microkit/command"
	microserver "github.com/giantswarm/microkit/server"
	"github.com/giantswarm/micrologger"
	"github.com/giantswarm/versionbundle"
	"github.com/spf13/viper"

	"github.com/giantswarm/azure-arm-api/flag"
	"github.com/giantswarm/azure-arm-api/pkg/project"
	"github.com/giantswarm/azure-arm-api/server"
	"github.com/giantswarm/azure-arm-api/service"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

var (
	f *flag.Flag = flag.New()
)

func main() {
	err := mainError()
	if err != nil {
		panic(fmt.Sprintf("%#v\n", err))
	}
}

func mainError() error {
	var err error

	ctx := context.Background()
	logger, err := micrologger.New(micrologger.Config{})
	if err != nil {
		return microerror.Mask(err)
	}

	// We define a server factory to create the custom server once all command
	// line flags are parsed and all microservice configuration is sorted out.
	serverFactory := func(v *viper.Viper) microserver.Server {
		var newService *service.Service
		{
			c := service.Config{
				Flag:   f,
				Logger: logger,
				Viper:  v,

				Description: project.Description(),
				GitCommit:   project.GitSHA(),
				ProjectName: project.Name(),
				Source:      project.Source(),
				Version:     project.Version(),
			}

			newService, err = service.New(c)
			if err != nil {
				panic(fmt.Sprintf("%#v", microerror.Mask(err)))
			}

			go newService.Boot(ctx)
		}

		var newServer microserver.Server
		{
			c := server.Config{
				Logger:  logger,
				Service: newService,
				Viper:   v,

				ProjectName: project.Name(),
			}

			newServer, err = server.New(c)
			if err != nil {
				panic(fmt.Sprintf("%#v", microerror.Mask(err)))
			}
		}

		return newServer
	}

	var newCommand command.Command
	{
		c := command.Config{
			Logger:        logger,
			ServerFactory: serverFactory,

			Description:    project.Description(),
			GitCommit:      project.GitSHA(),
			Name:           project.Name(),
			Source:         project.Source(),
			VersionBundles: []versionbundle.Bundle{project.NewVersionBundle()},
		}

		newCommand, err = command.New(c)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	daemonCommand := newCommand.DaemonCommand().CobraCommand()

	daemonCommand.PersistentFlags().String(f.Service.ARM.SQL.AdministratorLogin, "", "Administrator login of the SQL server deployed with the web app. Falls back to ARM_SQL_ADMINISTRATOR_LOGIN.")
	daemonCommand.PersistentFlags().String(f.Service.ARM.SQL.AdministratorLoginPassword, "", "Administrator password of the SQL server deployed with the web app. Falls back to ARM_SQL_ADMINISTRATOR_LOGIN_PASSWORD.")
	daemonCommand.PersistentFlags().String(f.Service.ARM.Template.ParametersURI, arm.DefaultParametersURI, "URI of the parameter file deployed from links.")
	daemonCommand.PersistentFlags().String(f.Service.ARM.Template.URI, arm.DefaultTemplateURI, "URI of the ARM template deployed from links.")
	daemonCommand.PersistentFlags().String(f.Service.Azure.ClientID, "", "ID of the Active Directory Service Principal. Falls back to AZURE_CLIENT_ID.")
	daemonCommand.PersistentFlags().String(f.Service.Azure.ClientSecret, "", "Secret of the Active Directory Service Principal. Falls back to AZURE_CLIENT_SECRET.")
	// The cloud environment identifier. Takes values from https://github.com/Azure/go-autorest/blob/ec5f4903f77ed9927ac95b19ab8e44ada64c1356/autorest/azure/environments.go#L13
	daemonCommand.PersistentFlags().String(f.Service.Azure.EnvironmentName, "AZUREPUBLICCLOUD", "Azure Cloud Environment identifier.")
	daemonCommand.PersistentFlags().String(f.Service.Azure.PartnerID, "", "Partner ID appended to the user agent of Azure API calls.")
	daemonCommand.PersistentFlags().String(f.Service.Azure.SubscriptionID, "", "ID of the Azure Subscription.")
	daemonCommand.PersistentFlags().String(f.Service.Azure.TenantID, "", "ID of the Active Directory Tenant. Falls back to AZURE_TENANT_ID.")
	daemonCommand.PersistentFlags().String(f.Service.Azure.Token.RefreshWithin, "5m", "Renew the access token when it expires within this duration.")

	err = newCommand.CobraCommand().Execute()
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
