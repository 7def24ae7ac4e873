package project

import (
	"github.com/giantswarm/versionbundle"
)

func NewVersionBundle() versionbundle.Bundle {
	return versionbundle.Bundle{
		Components: []versionbundle.Component{
			{
				Name:    "azure-sdk-for-go",
				Version: "65.0.0",
			},
		},
		Name:    Name(),
		Version: Version(),
	}
}
