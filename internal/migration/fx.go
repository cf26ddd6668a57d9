package migration

import (
	"github.com/taxsarthi/taxsarthi/internal/config"
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
	"github.com/taxsarthi/taxsarthi/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := conn.AutoMigrate(&orderdomain.Order{}); err != nil {
				return err
			}
		}

		if cfg.SeedDemoOrders && !cfg.IsProduction() {
			return seed.EnsureDemoOrders(conn)
		}
		return nil
	}),
)
