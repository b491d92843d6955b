// Package receipt renders the printable intake receipt handed to the customer
// together with the order's bag number.
package receipt

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

const dateLayout = "02/01/2006"

var typeLabels = map[entities.OrderType]string{
	entities.OrderTypeBordado:           "Bordado",
	entities.OrderTypeEstampado:         "Estampado",
	entities.OrderTypeEstampadoYBordado: "Estampado y bordado",
	entities.OrderTypeOtros:             "Otros",
}

type Generator struct {
	shopName string
}

func NewGenerator(shopName string) *Generator {
	return &Generator{shopName: shopName}
}

// Generate renders the receipt of o. The order must carry its client and worker.
func (g *Generator) Generate(o entities.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido "+o.ID, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(o.Client))
	m.AddRows(detailRows(o)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *Generator) headerRow(o entities.Order) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BOLSA "+o.BagID, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 1,
			}),
			text.New("Recibido: "+o.CreatedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func clientRow(c entities.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(fmt.Sprintf("%s   |   C.I.: %s   |   Tel: %s", c.Name, c.NationalID, c.Phone), props.Text{
				Size: 9, Top: 8,
			}),
		),
	)
}

func detailRows(o entities.Order) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(8).Add(text.New(value, props.Text{Size: 8, Top: 1})),
		)
	}

	return []core.Row{
		field("Tipo", typeLabels[o.Type]),
		field("Prendas", fmt.Sprintf("%d", o.GarmentCount)),
		field("Descripción", o.Description),
		field("Responsable", o.Worker.Name),
		field("Entrega estimada", o.DueDate.Format(dateLayout)),
		field("Estado", string(o.Status)),
	}
}

func totalsRow(o entities.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	balance := o.Total.Sub(o.Deposit)
	return row.New(18).Add(
		col.New(6).Add(text.New("Impreso: "+time.Now().Format(dateLayout), props.Text{
			Size: 7, Top: 12, Color: colorGray,
		})),
		col.New(3).Add(label("Total:", 1), label("Abono:", 6), label("Saldo:", 11)),
		col.New(3).Add(
			value("$"+o.Total.StringFixed(2), 1),
			value("$"+o.Deposit.StringFixed(2), 6),
			value("$"+balance.StringFixed(2), 11),
		),
	)
}
