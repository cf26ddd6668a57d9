package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/taxsarthi/taxsarthi/internal/config"
	"github.com/taxsarthi/taxsarthi/internal/gstbill"
	"github.com/taxsarthi/taxsarthi/internal/migration"
	"github.com/taxsarthi/taxsarthi/internal/observability"
	"github.com/taxsarthi/taxsarthi/internal/order"
	"github.com/taxsarthi/taxsarthi/internal/ratelimit"
	"github.com/taxsarthi/taxsarthi/internal/server"
	"github.com/taxsarthi/taxsarthi/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		order.Module,
		gstbill.Module,
		ratelimit.Module, // Invoice downloads are rate limited

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
