package arm

import (
	"github.com/giantswarm/azure-arm-api/flag/service/arm/sql"
	"github.com/giantswarm/azure-arm-api/flag/service/arm/template"
)

type ARM struct {
	SQL      sql.SQL
	Template template.Template
}
