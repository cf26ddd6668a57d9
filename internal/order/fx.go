package order

import (
	"github.com/taxsarthi/taxsarthi/internal/order/repository"
	"github.com/taxsarthi/taxsarthi/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
