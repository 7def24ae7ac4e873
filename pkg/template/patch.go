package template

import (
	"fmt"

	"github.com/giantswarm/microerror"
)

// WebAppParameters patches the parameters of the embedded web app template.
type WebAppParameters struct {
	AppName string
}

func (w WebAppParameters) Apply(p *Parameters) error {
	values := []struct {
		name  string
		value string
	}{
		{name: "appServicePlanName", value: fmt.Sprintf("%s-plan", w.AppName)},
		{name: "webAppName", value: w.AppName},
	}

	for _, v := range values {
		err := p.Set(v.name, v.value)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	return nil
}

// WebAppSQLParameters patches the parameters of the web app with SQL
// database quickstart template. Resource names are derived from the resource
// group name.
type WebAppSQLParameters struct {
	AdministratorLogin         string
	AdministratorLoginPassword string
	Location                   string
	ResourceGroup              string
}

func (w WebAppSQLParameters) Apply(p *Parameters) error {
	values := []struct {
		name  string
		value string
	}{
		{name: "hostingPlanName", value: fmt.Sprintf("%s-plan", w.ResourceGroup)},
		{name: "siteName", value: fmt.Sprintf("%s-web", w.ResourceGroup)},
		{name: "siteLocation", value: w.Location},
		{name: "serverName", value: fmt.Sprintf("%s-sqlserver", w.ResourceGroup)},
		{name: "serverLocation", value: w.Location},
		{name: "administratorLogin", value: w.AdministratorLogin},
		{name: "administratorLoginPassword", value: w.AdministratorLoginPassword},
		{name: "databaseName", value: fmt.Sprintf("%s-sqldb", w.ResourceGroup)},
	}

	for _, v := range values {
		err := p.Set(v.name, v.value)
		if err != nil {
			return microerror.Mask(err)
		}
	}

	return nil
}
