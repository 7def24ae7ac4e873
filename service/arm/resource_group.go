package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/client"
	"github.com/giantswarm/azure-arm-api/pkg/odata"
)

// ListResourceGroups returns the first page of all resource groups of the
// subscription.
func (s *Service) ListResourceGroups(ctx context.Context) (resources.GroupListResultPage, error) {
	page, err := s.listResourceGroups(ctx, "")
	if err != nil {
		return resources.GroupListResultPage{}, microerror.Mask(err)
	}

	return page, nil
}

// ListResourceGroupsByTag returns the first page of resource groups carrying
// the tag, whatever its value.
func (s *Service) ListResourceGroupsByTag(ctx context.Context, tagName string) (resources.GroupListResultPage, error) {
	if tagName == "" {
		return resources.GroupListResultPage{}, microerror.Maskf(invalidInputError, "tag name must not be empty")
	}

	page, err := s.listResourceGroups(ctx, odata.Eq("tagname", tagName))
	if err != nil {
		return resources.GroupListResultPage{}, microerror.Mask(err)
	}

	return page, nil
}

func (s *Service) listResourceGroups(ctx context.Context, filter string) (resources.GroupListResultPage, error) {
	s.logger.Debugf(ctx, "listing resource groups with filter %#q", filter)

	page, err := s.api.ListGroups(ctx, filter)
	if err != nil {
		return resources.GroupListResultPage{}, microerror.Mask(newProviderCallError("ListResourceGroups", err))
	}

	s.logger.Debugf(ctx, "listed resource groups with filter %#q", filter)

	return page, nil
}

// CreateOrUpdateResourceGroup creates the resource group or updates its
// location. Tags of an existing group are removed.
func (s *Service) CreateOrUpdateResourceGroup(ctx context.Context, name, location string) (resources.Group, error) {
	group := resources.Group{
		Name:     to.StringPtr(name),
		Location: to.StringPtr(location),
	}

	g, err := s.createOrUpdateResourceGroup(ctx, group)
	if err != nil {
		return resources.Group{}, microerror.Mask(err)
	}

	return g, nil
}

// CreateOrUpdateResourceGroupWithTag creates or updates the resource group so
// that it carries exactly the given tag. Other tags of an existing group are
// removed.
func (s *Service) CreateOrUpdateResourceGroupWithTag(ctx context.Context, name, location, tagName, tagValue string) (resources.Group, error) {
	if tagName == "" {
		return resources.Group{}, microerror.Maskf(invalidInputError, "tag name must not be empty")
	}

	group := resources.Group{
		Name:     to.StringPtr(name),
		Location: to.StringPtr(location),
		Tags: map[string]*string{
			tagName: to.StringPtr(tagValue),
		},
	}

	g, err := s.createOrUpdateResourceGroup(ctx, group)
	if err != nil {
		return resources.Group{}, microerror.Mask(err)
	}

	return g, nil
}

func (s *Service) createOrUpdateResourceGroup(ctx context.Context, group resources.Group) (resources.Group, error) {
	name := to.String(group.Name)

	if name == "" {
		return resources.Group{}, microerror.Maskf(invalidInputError, "resource group name must not be empty")
	}
	if to.String(group.Location) == "" {
		return resources.Group{}, microerror.Maskf(invalidInputError, "resource group location must not be empty")
	}

	s.logger.Debugf(ctx, "ensuring resource group %#q", name)

	g, err := s.api.CreateOrUpdateGroup(ctx, name, group)
	if err != nil {
		return resources.Group{}, microerror.Mask(newProviderCallError("CreateOrUpdateResourceGroup", err))
	}

	s.logger.Debugf(ctx, "ensured resource group %#q", name)

	return g, nil
}

// DeleteResourceGroup starts the deletion of the resource group. It returns
// once the API accepted the request.
func (s *Service) DeleteResourceGroup(ctx context.Context, name string) error {
	if name == "" {
		return microerror.Maskf(invalidInputError, "resource group name must not be empty")
	}

	s.logger.Debugf(ctx, "deleting resource group %#q", name)

	err := s.api.DeleteGroup(ctx, name)
	if err != nil {
		return microerror.Mask(newProviderCallError("DeleteResourceGroup", err))
	}

	s.logger.Debugf(ctx, "resource group %#q deletion in progress", name)

	return nil
}

// ResourceGroupExists checks whether the resource group exists.
func (s *Service) ResourceGroupExists(ctx context.Context, name string) (Existence, error) {
	if name == "" {
		return ExistenceUnknown, microerror.Maskf(invalidInputError, "resource group name must not be empty")
	}

	res, err := s.api.CheckGroupExistence(ctx, name)
	if err != nil {
		return ExistenceUnknown, microerror.Mask(newProviderCallError("CheckResourceGroupExistence", err))
	}

	switch {
	case client.ResponseWasNoContent(res):
		return Exists, nil
	case client.ResponseWasNotFound(res):
		return NotExists, nil
	default:
		return ExistenceUnknown, nil
	}
}
