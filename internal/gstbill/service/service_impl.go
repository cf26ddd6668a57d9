package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taxsarthi/taxsarthi/internal/config"
	"github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
	obsmetrics "github.com/taxsarthi/taxsarthi/internal/observability/metrics"
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Cfg      config.Config
	Orders   orderdomain.Service
	Renderer domain.Renderer
	Metrics  *obsmetrics.Metrics `optional:"true"`
	Logger   *zap.Logger
}

type service struct {
	ratePercent float64
	orders      orderdomain.Service
	renderer    domain.Renderer
	metrics     *obsmetrics.Metrics
	log         *zap.Logger
}

func New(p ServiceParam) domain.Service {
	return &service{
		ratePercent: p.Cfg.GSTRatePercent,
		orders:      p.Orders,
		renderer:    p.Renderer,
		metrics:     p.Metrics,
		log:         p.Logger,
	}
}

// Export fetches the order, computes its tax breakdown and renders the bill.
// The document is rebuilt from scratch on every call; a failed render leaves
// nothing behind and the caller may simply retry.
func (s *service) Export(ctx context.Context, orderID string) (domain.Export, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.Export{}, err
	}
	if order.Amount <= 0 {
		// Free orders never generate tax invoices.
		return domain.Export{}, domain.ErrNonPositiveAmount
	}

	breakdown, err := Decompose(order.Amount, s.ratePercent)
	if err != nil {
		return domain.Export{}, err
	}

	doc := BuildDocument(order, breakdown)

	start := time.Now()
	pdf, err := s.renderer.Render(ctx, doc)
	if err != nil {
		s.metrics.RecordBillRender("error", time.Since(start))
		s.log.Error("gst bill render failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return domain.Export{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	s.metrics.RecordBillRender("ok", time.Since(start))

	s.log.Info("gst bill exported",
		zap.String("order_id", orderID),
		zap.String("invoice_number", doc.Number),
		zap.Int("pdf_bytes", len(pdf)),
	)

	return domain.Export{
		Filename: ExportFilename(order.ID),
		PDF:      pdf,
	}, nil
}
