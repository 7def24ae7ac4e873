package arm

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-arm-api/pkg/odata"
)

const (
	ResourceTypeWebApp         = "Microsoft.Web/sites"
	ResourceTypeVirtualMachine = "Microsoft.Compute/virtualMachines"
)

// ListResourcesByType returns the first page of resources of the given
// resource type, e.g. Microsoft.Web/sites.
func (s *Service) ListResourcesByType(ctx context.Context, typeName string) (resources.ListResultPage, error) {
	if typeName == "" {
		return resources.ListResultPage{}, microerror.Maskf(invalidInputError, "resource type must not be empty")
	}

	filter := odata.Eq("resourceType", typeName)

	s.logger.Debugf(ctx, "listing resources with filter %#q", filter)

	page, err := s.api.ListResources(ctx, filter)
	if err != nil {
		return resources.ListResultPage{}, microerror.Mask(newProviderCallError("ListResources", err))
	}

	s.logger.Debugf(ctx, "listed resources with filter %#q", filter)

	return page, nil
}

func (s *Service) ListWebApps(ctx context.Context) (resources.ListResultPage, error) {
	page, err := s.ListResourcesByType(ctx, ResourceTypeWebApp)
	if err != nil {
		return resources.ListResultPage{}, microerror.Mask(err)
	}

	return page, nil
}

func (s *Service) ListVirtualMachines(ctx context.Context) (resources.ListResultPage, error) {
	page, err := s.ListResourcesByType(ctx, ResourceTypeVirtualMachine)
	if err != nil {
		return resources.ListResultPage{}, microerror.Mask(err)
	}

	return page, nil
}
