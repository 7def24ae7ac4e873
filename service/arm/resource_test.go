package arm

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/golang/mock/gomock"
)

func Test_ListResources_Filters(t *testing.T) {
	ctx := context.Background()
	s, m := newMockService(t)

	gomock.InOrder(
		m.EXPECT().ListResources(gomock.Any(), "resourceType eq 'Microsoft.Web/sites'").Return(resources.ListResultPage{}, nil),
		m.EXPECT().ListResources(gomock.Any(), "resourceType eq 'Microsoft.Compute/virtualMachines'").Return(resources.ListResultPage{}, nil),
		m.EXPECT().ListResources(gomock.Any(), "resourceType eq 'Microsoft.Storage/storageAccounts'").Return(resources.ListResultPage{}, nil),
	)

	_, err := s.ListWebApps(ctx)
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ListVirtualMachines(ctx)
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ListResourcesByType(ctx, "Microsoft.Storage/storageAccounts")
	if err != nil {
		t.Fatal(err)
	}
}

func Test_ListResourcesByType_InvalidInput(t *testing.T) {
	s, _ := newMockService(t)

	_, err := s.ListResourcesByType(context.Background(), "")
	if !IsInvalidInput(err) {
		t.Fatalf("expected invalid input error got %#v", err)
	}
}

func Test_ListResourcesByType_EscapesQuotes(t *testing.T) {
	s, m := newMockService(t)

	m.EXPECT().ListResources(gomock.Any(), "resourceType eq 'Contoso.Custom/o''brien'").Return(resources.ListResultPage{}, nil)

	_, err := s.ListResourcesByType(context.Background(), "Contoso.Custom/o'brien")
	if err != nil {
		t.Fatal(err)
	}
}
