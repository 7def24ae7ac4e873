package arm

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/pkg/template"
)

const (
	// DeploymentNameTag is set on resource groups created for a deployment.
	// Its value is the deployment name.
	DeploymentNameTag = "deploymentName"
)

// DeploymentName returns the name of the deployment targeting the resource
// group.
func DeploymentName(resourceGroupName string) string {
	return fmt.Sprintf("%s-deployment", resourceGroupName)
}

// DeployFromLinks deploys the linked template with the linked parameter file
// into the resource group, creating the group first if needed.
func (s *Service) DeployFromLinks(ctx context.Context, resourceGroupName, location string) (resources.DeploymentExtended, error) {
	properties := &resources.DeploymentProperties{
		TemplateLink: &resources.TemplateLink{
			URI: to.StringPtr(s.templateURI),
		},
		ParametersLink: &resources.ParametersLink{
			URI: to.StringPtr(s.parametersURI),
		},
	}

	d, err := s.deploy(ctx, resourceGroupName, location, properties)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	return d, nil
}

// DeployFromEmbeddedFiles deploys a single free tier web app named appName
// from the embedded template and parameter file.
func (s *Service) DeployFromEmbeddedFiles(ctx context.Context, resourceGroupName, location, appName string) (resources.DeploymentExtended, error) {
	if appName == "" {
		return resources.DeploymentExtended{}, microerror.Maskf(invalidInputError, "app name must not be empty")
	}

	tmpl, err := s.templates.WebAppTemplate()
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}
	params, err := s.templates.WebAppParameters()
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	err = template.WebAppParameters{AppName: appName}.Apply(params)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	properties := &resources.DeploymentProperties{
		Template:   tmpl,
		Parameters: params.Parameters,
	}

	d, err := s.deploy(ctx, resourceGroupName, location, properties)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	return d, nil
}

// DeployFromTemplateLinkAndEmbeddedParams deploys the linked web app with SQL
// database template with the embedded parameter file. Resource names are
// derived from the resource group name.
func (s *Service) DeployFromTemplateLinkAndEmbeddedParams(ctx context.Context, resourceGroupName, location string) (resources.DeploymentExtended, error) {
	params, err := s.templates.WebAppSQLParameters()
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	patch := template.WebAppSQLParameters{
		AdministratorLogin:         s.sqlAdministratorLogin,
		AdministratorLoginPassword: s.sqlAdministratorLoginPassword,
		Location:                   location,
		ResourceGroup:              resourceGroupName,
	}
	err = patch.Apply(params)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	properties := &resources.DeploymentProperties{
		TemplateLink: &resources.TemplateLink{
			URI: to.StringPtr(s.templateURI),
		},
		Parameters: params.Parameters,
	}

	d, err := s.deploy(ctx, resourceGroupName, location, properties)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	return d, nil
}

func (s *Service) deploy(ctx context.Context, resourceGroupName, location string, properties *resources.DeploymentProperties) (resources.DeploymentExtended, error) {
	if resourceGroupName == "" {
		return resources.DeploymentExtended{}, microerror.Maskf(invalidInputError, "resource group name must not be empty")
	}
	if location == "" {
		return resources.DeploymentExtended{}, microerror.Maskf(invalidInputError, "location must not be empty")
	}

	deploymentName := DeploymentName(resourceGroupName)

	err := s.ensureResourceGroup(ctx, resourceGroupName, location, deploymentName)
	if err != nil {
		return resources.DeploymentExtended{}, microerror.Mask(err)
	}

	properties.Mode = resources.Incremental
	deployment := resources.Deployment{
		Properties: properties,
	}

	s.logger.Debugf(ctx, "ensuring deployment %#q", deploymentName)

	d, err := s.api.CreateOrUpdateDeployment(ctx, resourceGroupName, deploymentName, deployment)
	if err != nil {
		s.logger.Errorf(ctx, err, "deployment %#q failed", deploymentName)
		return resources.DeploymentExtended{}, microerror.Mask(newProviderCallError("CreateOrUpdateDeployment", err))
	}

	s.logger.Debugf(ctx, "ensured deployment %#q", deploymentName)

	return d, nil
}

// ensureResourceGroup creates the resource group unless it is known to
// exist. Groups created here are tagged with the deployment name.
func (s *Service) ensureResourceGroup(ctx context.Context, name, location, deploymentName string) error {
	existence, err := s.ResourceGroupExists(ctx, name)
	if err != nil {
		return microerror.Mask(err)
	}

	if existence == Exists {
		s.logger.Debugf(ctx, "resource group %#q already exists", name)
		return nil
	}

	s.logger.Debugf(ctx, "resource group %#q existence is %s", name, existence)

	_, err = s.CreateOrUpdateResourceGroupWithTag(ctx, name, location, DeploymentNameTag, deploymentName)
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}
