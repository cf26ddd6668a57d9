package domain

import "context"

// Renderer turns a Document into PDF bytes. Implemented by providers/pdf.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// Service produces downloadable GST bills for paid orders.
type Service interface {
	Export(ctx context.Context, orderID string) (Export, error)
}
