package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/giantswarm/azure-arm-api/service/arm/armtest"
)

func Test_Endpoints(t *testing.T) {
	testCases := []struct {
		name           string
		create         func(Config) (*Endpoint, error)
		expectedFilter string
		expectedPath   string
		resourceType   string
	}{
		{
			name:           "case 0: web apps",
			create:         NewListWebApps,
			expectedFilter: "resourceType eq 'Microsoft.Web/sites'",
			expectedPath:   "/api/arm/resources/type/webapp",
			resourceType:   "Microsoft.Web/sites",
		},
		{
			name:           "case 1: virtual machines",
			create:         NewListVirtualMachines,
			expectedFilter: "resourceType eq 'Microsoft.Compute/virtualMachines'",
			expectedPath:   "/api/arm/resources/type/vm",
			resourceType:   "Microsoft.Compute/virtualMachines",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			s, m := armtest.NewMockService(t)

			page := resources.NewListResultPage(
				resources.ListResult{
					Value: &[]resources.GenericResourceExpanded{
						{
							ID:       to.StringPtr("/subscriptions/sub/resourceGroups/demo-rg/providers/" + tc.resourceType + "/one"),
							Name:     to.StringPtr("one"),
							Type:     to.StringPtr(tc.resourceType),
							Location: to.StringPtr("westeurope"),
						},
					},
				},
				nil,
			)
			m.EXPECT().ListResources(gomock.Any(), tc.expectedFilter).Return(page, nil)

			e, err := tc.create(Config{Logger: microloggertest.New(), Service: s})
			if err != nil {
				t.Fatal(err)
			}
			if e.Method() != http.MethodGet {
				t.Fatalf("expected method %#q got %#q", http.MethodGet, e.Method())
			}
			if e.Path() != tc.expectedPath {
				t.Fatalf("expected path %#q got %#q", tc.expectedPath, e.Path())
			}

			r := httptest.NewRequest(http.MethodGet, tc.expectedPath, nil)
			request, err := e.Decoder()(ctx, r)
			if err != nil {
				t.Fatal(err)
			}
			response, err := e.Endpoint()(ctx, request)
			if err != nil {
				t.Fatal(err)
			}
			w := httptest.NewRecorder()
			err = e.Encoder()(ctx, w, response)
			if err != nil {
				t.Fatal(err)
			}

			var list []Resource
			err = json.Unmarshal(w.Body.Bytes(), &list)
			if err != nil {
				t.Fatal(err)
			}

			expected := []Resource{
				{
					ID:       "/subscriptions/sub/resourceGroups/demo-rg/providers/" + tc.resourceType + "/one",
					Name:     "one",
					Type:     tc.resourceType,
					Location: "westeurope",
				},
			}
			if !cmp.Equal(list, expected) {
				t.Fatalf("\n\n%s\n", cmp.Diff(expected, list))
			}
		})
	}
}

func Test_New_InvalidConfig(t *testing.T) {
	_, err := NewListWebApps(Config{})
	if !IsInvalidConfig(err) {
		t.Fatalf("expected invalid config error got %#v", err)
	}
}
