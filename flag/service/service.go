package service

import (
	"github.com/giantswarm/azure-arm-api/flag/service/arm"
	"github.com/giantswarm/azure-arm-api/flag/service/azure"
)

type Service struct {
	ARM   arm.ARM
	Azure azure.Azure
}
