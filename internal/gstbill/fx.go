package gstbill

import (
	"github.com/taxsarthi/taxsarthi/internal/gstbill/service"
	"github.com/taxsarthi/taxsarthi/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("gstbill.service",
	pdf.Module,
	fx.Provide(service.New),
)
