package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/taxsarthi/taxsarthi/internal/gstbill/domain"
)

var headerGrey = props.Color{Red: 90, Green: 90, Blue: 90}

// Renderer draws the fixed A4 GST bill layout with maroto.
type Renderer struct{}

func New() domain.Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(ctx context.Context, doc domain.Document) ([]byte, error) {
	_ = ctx

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	// Title
	m.AddRow(12,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(2, line.NewCol(12))

	// Seller block top-left, invoice metadata top-right.
	m.AddRow(34,
		col.New(7).Add(
			text.New(doc.Seller.Name, props.Text{Style: fontstyle.Bold, Size: 11}),
			text.New(doc.Seller.Address, props.Text{Top: 6, Size: 9}),
			text.New(doc.Seller.Phone+"  |  "+doc.Seller.Email, props.Text{Top: 14, Size: 9}),
			text.New("GSTIN: "+doc.Seller.GSTIN, props.Text{Top: 19, Size: 9, Style: fontstyle.Bold}),
		),
		col.New(5).Add(
			text.New("Invoice No: "+doc.Number, props.Text{Size: 9, Align: align.Right}),
			text.New("Invoice Date: "+doc.Date, props.Text{Top: 5, Size: 9, Align: align.Right}),
			text.New("State: "+doc.Seller.State, props.Text{Top: 10, Size: 9, Align: align.Right}),
			text.New("State Code: "+doc.Seller.StateCode, props.Text{Top: 15, Size: 9, Align: align.Right}),
		),
	)

	// Bill To
	m.AddRow(26,
		col.New(12).Add(
			text.New("Bill To", props.Text{Style: fontstyle.Bold, Size: 10}),
			text.New(doc.Buyer.Name, props.Text{Top: 5, Size: 9}),
			text.New(doc.Buyer.Address, props.Text{Top: 10, Size: 9}),
			text.New(doc.Buyer.Phone, props.Text{Top: 15, Size: 9}),
		),
	)

	// Service table
	m.AddRow(8,
		text.NewCol(1, "S.No.", headerCell()),
		text.NewCol(4, "Description", headerCell()),
		text.NewCol(2, "SAC", headerCell()),
		text.NewCol(1, "Qty", headerCellRight()),
		text.NewCol(2, "Rate", headerCellRight()),
		text.NewCol(1, "GST%", headerCellRight()),
		text.NewCol(1, "Amount", headerCellRight()),
	)
	m.AddRow(1, line.NewCol(12))
	m.AddRow(10,
		text.NewCol(1, fmt.Sprintf("%d", doc.Item.SNo), bodyCell()),
		text.NewCol(4, doc.Item.Description, bodyCell()),
		text.NewCol(2, doc.Item.SAC, bodyCell()),
		text.NewCol(1, fmt.Sprintf("%d", doc.Item.Qty), bodyCellRight()),
		text.NewCol(2, money(doc.Item.Rate), bodyCellRight()),
		text.NewCol(1, fmt.Sprintf("%.0f%%", doc.Item.RatePercent), bodyCellRight()),
		text.NewCol(1, money(doc.Item.Amount), bodyCellRight()),
	)
	m.AddRow(1, line.NewCol(12))

	// Summary, right-aligned.
	summary := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Sub Total", doc.Summary.SubTotal, false},
		{"CGST", doc.Summary.CGST, false},
		{"SGST", doc.Summary.SGST, false},
		{"Total", doc.Summary.Total, true},
	}
	for _, row := range summary {
		style := fontstyle.Normal
		if row.bold {
			style = fontstyle.Bold
		}
		m.AddRow(6,
			col.New(8),
			text.NewCol(2, row.label, props.Text{Size: 9, Style: style, Align: align.Right}),
			text.NewCol(2, money(row.value), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	// Amount in words.
	m.AddRow(10,
		col.New(12).Add(
			text.New("Amount in Words", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(doc.AmountWords, props.Text{Top: 5, Size: 9}),
		),
	)

	// Itemized tax table.
	m.AddRow(8,
		text.NewCol(2, "SAC", headerCell()),
		text.NewCol(2, "Taxable Value", headerCellRight()),
		text.NewCol(2, "CGST Rate", headerCellRight()),
		text.NewCol(2, "SGST Rate", headerCellRight()),
		text.NewCol(2, "CGST Amt", headerCellRight()),
		text.NewCol(2, "SGST Amt", headerCellRight()),
	)
	m.AddRow(1, line.NewCol(12))
	m.AddRow(8,
		text.NewCol(2, doc.TaxRow.SAC, bodyCell()),
		text.NewCol(2, money(doc.TaxRow.TaxableValue), bodyCellRight()),
		text.NewCol(2, fmt.Sprintf("%.0f%%", doc.TaxRow.CGSTRatePercent), bodyCellRight()),
		text.NewCol(2, fmt.Sprintf("%.0f%%", doc.TaxRow.SGSTRatePercent), bodyCellRight()),
		text.NewCol(2, money(doc.TaxRow.CGSTAmount), bodyCellRight()),
		text.NewCol(2, money(doc.TaxRow.SGSTAmount), bodyCellRight()),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total Tax", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, money(doc.TaxRow.TotalTax), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)

	// Bank details
	m.AddRow(22,
		col.New(12).Add(
			text.New("Bank Details", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New("Bank: "+doc.Bank.BankName, props.Text{Top: 5, Size: 9}),
			text.New("A/C No: "+doc.Bank.AccountNumber, props.Text{Top: 10, Size: 9}),
			text.New("IFSC: "+doc.Bank.IFSC, props.Text{Top: 15, Size: 9}),
		),
	)

	// Footer
	m.AddRow(10,
		text.NewCol(12, doc.FooterNote, props.Text{Size: 8, Align: align.Center, Color: &headerGrey}),
	)

	rendered, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return rendered.GetBytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func headerCell() props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 9}
}

func headerCellRight() props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}
}

func bodyCell() props.Text {
	return props.Text{Size: 9}
}

func bodyCellRight() props.Text {
	return props.Text{Size: 9, Align: align.Right}
}
