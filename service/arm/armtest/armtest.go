// Package armtest builds facades backed by test doubles of the Azure
// Resource Manager API.
package armtest

import (
	"testing"

	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/golang/mock/gomock"

	"github.com/giantswarm/azure-arm-api/pkg/mock/mock_arm"
	"github.com/giantswarm/azure-arm-api/pkg/template"
	"github.com/giantswarm/azure-arm-api/service/arm"
)

const (
	SQLAdministratorLogin         = "sqladmin"
	SQLAdministratorLoginPassword = "s3cr3t-from-config"
)

// NewService returns a facade calling api.
func NewService(t *testing.T, api arm.API) *arm.Service {
	t.Helper()

	store, err := template.NewStore(template.StoreConfig{Logger: microloggertest.New()})
	if err != nil {
		t.Fatal(err)
	}

	c := arm.Config{
		API:       api,
		Logger:    microloggertest.New(),
		Templates: store,

		SQLAdministratorLogin:         SQLAdministratorLogin,
		SQLAdministratorLoginPassword: SQLAdministratorLoginPassword,
	}

	s, err := arm.New(c)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

// NewMockService returns a facade calling a gomock double of the API.
func NewMockService(t *testing.T) (*arm.Service, *mock_arm.MockAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mock_arm.NewMockAPI(ctrl)

	return NewService(t, m), m
}
