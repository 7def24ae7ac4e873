// Package resourcegroup implements the resource group endpoints.
package resourcegroup

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	kitendpoint "github.com/go-kit/kit/endpoint"
	"github.com/gorilla/mux"

	"github.com/giantswarm/azure-arm-api/server/endpoint/respond"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

// Config represents the configuration used to create a resource group
// endpoint.
type Config struct {
	Logger  micrologger.Logger
	Service *arm.Service
}

func (c Config) validate() error {
	if c.Logger == nil {
		return microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", c)
	}
	if c.Service == nil {
		return microerror.Maskf(invalidConfigError, "%T.Service must not be empty", c)
	}

	return nil
}

// ResourceGroup is the response representation of a resource group.
type ResourceGroup struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Location          string            `json:"location"`
	ProvisioningState string            `json:"provisioningState,omitempty"`
	Tags              map[string]string `json:"tags,omitempty"`
}

func newResourceGroup(g resources.Group) ResourceGroup {
	r := ResourceGroup{
		ID:       to.String(g.ID),
		Name:     to.String(g.Name),
		Location: to.String(g.Location),
		Tags:     to.StringMap(g.Tags),
	}
	if g.Properties != nil {
		r.ProvisioningState = to.String(g.Properties.ProvisioningState)
	}

	return r
}

func newResourceGroups(page resources.GroupListResultPage) []ResourceGroup {
	groups := []ResourceGroup{}
	for _, g := range page.Values() {
		groups = append(groups, newResourceGroup(g))
	}

	return groups
}

type groupRequest struct {
	Name     string
	Location string
	TagName  string
	TagValue string
}

func decodeRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)

	req := groupRequest{
		Name:     vars["name"],
		Location: vars["location"],
		TagName:  vars["tagName"],
		TagValue: vars["tagValue"],
	}

	return req, nil
}

func encodeOK(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return respond.JSON(w, http.StatusOK, response)
}

func noMiddlewares() []kitendpoint.Middleware {
	return []kitendpoint.Middleware{}
}
