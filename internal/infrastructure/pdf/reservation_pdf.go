// Package pdf implementa la generación del comprobante de reserva de visita.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: FoodiesBNB  │  Código de reserva + Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESTAURANTE: Nombre / Ubicación / Tipo / Horario            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Fecha | Hora | Personas | Notas                    │
//	│  BENEFICIOS: lista de beneficios del restaurante             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR del código + leyenda de presentación             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 214, Green: 69, Blue: 65}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReservationPDF implementa visita.ReservationPDFGenerator usando Maroto v2.
type MarotoReservationPDF struct{}

// NewMarotoReservationPDF construye el generador.
func NewMarotoReservationPDF() *MarotoReservationPDF { return &MarotoReservationPDF{} }

// GenerateReservationPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReservationPDF) GenerateReservationPDF(
	_ context.Context,
	visita *entity.Visita,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Reserva", true).
		WithAuthor("FoodiesBNB", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(visita))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(restauranteRow(&visita.Restaurante))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detalleRow(visita))

	if len(visita.Restaurante.Beneficios) > 0 {
		for _, r := range beneficiosRows(visita.Restaurante.Beneficios) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(visita) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y código de reserva + estado (der).
func headerRow(visita *entity.Visita) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("FoodiesBNB", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de reserva", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CÓDIGO DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(visita.CodigoReserva, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Estado: "+visita.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// restauranteRow: datos del restaurante visitado.
func restauranteRow(r *entity.RestauranteSnapshot) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("RESTAURANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   Horario: %s",
				r.Ubicacion,
				r.Tipo,
				nonEmpty(r.Horario, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detalleRow: fecha, hora, personas y notas de la visita.
func detalleRow(visita *entity.Visita) core.Row {
	cell := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	return row.New(16).Add(
		cell("FECHA", visita.Fecha, 3),
		cell("HORA", visita.Hora, 2),
		cell("PERSONAS", fmt.Sprintf("%d", visita.NumeroPersonas), 2),
		cell("NOTAS", nonEmpty(visita.NotasEspeciales, "—"), 5),
	)
}

// beneficiosRows: una fila por beneficio del restaurante.
func beneficiosRows(beneficios []string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("BENEFICIOS INCLUIDOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, b := range beneficios {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+b, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}

// footerRows: QR del código de reserva + leyenda de presentación.
func footerRows(visita *entity.Visita) []core.Row {
	return []core.Row{
		row.New(50).Add(
			col.New(4).Add(code.NewQr(visita.CodigoReserva, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Presenta este código QR al llegar\npara confirmar tu reserva.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("RESERVA CONFIRMADA EN\nFOODIESBNB", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 22,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Las cancelaciones deben realizarse desde la aplicación antes de la "+
					"fecha de la visita. Los beneficios aplican únicamente presentando "+
					"este comprobante.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
