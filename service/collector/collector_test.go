package collector

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type fakeGroups struct {
	groups  []resources.Group
	filters []string
}

func (f *fakeGroups) ListComplete(ctx context.Context, filter string, top *int32) (resources.GroupListResultIterator, error) {
	f.filters = append(f.filters, filter)

	groups := f.groups
	page := resources.NewGroupListResultPage(
		resources.GroupListResult{Value: &groups},
		func(context.Context, resources.GroupListResult) (resources.GroupListResult, error) {
			return resources.GroupListResult{}, nil
		},
	)

	return resources.NewGroupListResultIterator(page), nil
}

type fakeDeployments struct {
	deployments map[string][]resources.DeploymentExtended
}

func (f *fakeDeployments) ListByResourceGroupComplete(ctx context.Context, resourceGroupName string, filter string, top *int32) (resources.DeploymentListResultIterator, error) {
	deployments, ok := f.deployments[resourceGroupName]
	if !ok {
		return resources.DeploymentListResultIterator{}, errors.New("resource group not found")
	}

	page := resources.NewDeploymentListResultPage(
		resources.DeploymentListResult{Value: &deployments},
		func(context.Context, resources.DeploymentListResult) (resources.DeploymentListResult, error) {
			return resources.DeploymentListResult{}, nil
		},
	)

	return resources.NewDeploymentListResultIterator(page), nil
}

type fakeToken struct {
	expiresOn time.Time
}

func (f fakeToken) ExpiresOn() time.Time {
	return f.expiresOn
}

type collectFunc func(ch chan<- prometheus.Metric) error

// collect returns the label values of every collected metric joined by "/"
// together with the metric value.
func collect(t *testing.T, c collectFunc) []string {
	ch := make(chan prometheus.Metric, 100)

	err := c(ch)
	if err != nil {
		t.Fatal(err)
	}
	close(ch)

	var results []string
	for m := range ch {
		var d dto.Metric
		err := m.Write(&d)
		if err != nil {
			t.Fatal(err)
		}

		var values []string
		for _, l := range d.GetLabel() {
			values = append(values, l.GetName()+"="+l.GetValue())
		}
		results = append(results, strings.Join(values, "/")+" "+strconv.FormatFloat(d.GetGauge().GetValue(), 'f', -1, 64))
	}
	sort.Strings(results)

	return results
}

func Test_ResourceGroup_Collect(t *testing.T) {
	groups := &fakeGroups{
		groups: []resources.Group{
			{
				ID:         to.StringPtr("/subscriptions/sub/resourceGroups/a"),
				Name:       to.StringPtr("a"),
				Location:   to.StringPtr("westeurope"),
				Properties: &resources.GroupProperties{ProvisioningState: to.StringPtr("Succeeded")},
			},
			{
				ID:       to.StringPtr("/subscriptions/sub/resourceGroups/b"),
				Name:     to.StringPtr("b"),
				Location: to.StringPtr("eastus"),
			},
		},
	}

	c, err := NewResourceGroup(ResourceGroupConfig{
		GroupsClient:   groups,
		Logger:         microloggertest.New(),
		SubscriptionID: "sub",
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"id=/subscriptions/sub/resourceGroups/a/location=westeurope/managed_by=/name=a/state=Succeeded/subscription_id=sub 1",
		"id=/subscriptions/sub/resourceGroups/b/location=eastus/managed_by=/name=b/state=/subscription_id=sub 1",
	}

	results := collect(t, c.Collect)
	if !cmp.Equal(results, expected) {
		t.Fatalf("\n\n%s\n", cmp.Diff(expected, results))
	}
}

func Test_Deployment_Collect(t *testing.T) {
	groups := &fakeGroups{
		groups: []resources.Group{
			{Name: to.StringPtr("a")},
			{Name: to.StringPtr("b")},
		},
	}
	deployments := &fakeDeployments{
		deployments: map[string][]resources.DeploymentExtended{
			"a": {
				{
					Name:       to.StringPtr("a-deployment"),
					Properties: &resources.DeploymentPropertiesExtended{ProvisioningState: to.StringPtr("Succeeded")},
				},
			},
			"b": {
				{
					Name:       to.StringPtr("b-deployment"),
					Properties: &resources.DeploymentPropertiesExtended{ProvisioningState: to.StringPtr("Failed")},
				},
			},
		},
	}

	c, err := NewDeployment(DeploymentConfig{
		DeploymentsClient: deployments,
		GroupsClient:      groups,
		Logger:            microloggertest.New(),
		TagName:           "deploymentName",
	})
	if err != nil {
		t.Fatal(err)
	}

	results := collect(t, c.Collect)

	if !cmp.Equal(groups.filters, []string{"tagname eq 'deploymentName'"}) {
		t.Fatalf("unexpected group filters %#v", groups.filters)
	}
	if len(results) != 2*len(deploymentStatuses) {
		t.Fatalf("expected %d metrics got %d", 2*len(deploymentStatuses), len(results))
	}

	var active []string
	for _, r := range results {
		if strings.HasSuffix(r, " 1") {
			active = append(active, r)
		}
	}
	expected := []string{
		"deployment_name=a-deployment/resource_group=a/status=Succeeded 1",
		"deployment_name=b-deployment/resource_group=b/status=Failed 1",
	}
	if !cmp.Equal(active, expected) {
		t.Fatalf("\n\n%s\n", cmp.Diff(expected, active))
	}
}

func Test_Deployment_Collect_Error(t *testing.T) {
	groups := &fakeGroups{
		groups: []resources.Group{
			{Name: to.StringPtr("unknown")},
		},
	}

	c, err := NewDeployment(DeploymentConfig{
		DeploymentsClient: &fakeDeployments{},
		GroupsClient:      groups,
		Logger:            microloggertest.New(),
		TagName:           "deploymentName",
	})
	if err != nil {
		t.Fatal(err)
	}

	ch := make(chan prometheus.Metric, 10)
	err = c.Collect(ch)
	if err == nil {
		t.Fatal("expected listing error to be returned")
	}
}

func Test_TokenExpiration_Collect(t *testing.T) {
	c, err := NewTokenExpiration(TokenExpirationConfig{
		Logger:         microloggertest.New(),
		Token:          fakeToken{expiresOn: time.Unix(1700000000, 0)},
		ClientID:       "app",
		SubscriptionID: "sub",
	})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"application_id=app/subscription_id=sub 1700000000",
	}

	results := collect(t, c.Collect)
	if !cmp.Equal(results, expected) {
		t.Fatalf("\n\n%s\n", cmp.Diff(expected, results))
	}
}

func Test_NewSet_InvalidConfig(t *testing.T) {
	_, err := NewSet(SetConfig{})
	if !IsInvalidConfig(err) {
		t.Fatalf("expected invalid config error got %#v", err)
	}
}
