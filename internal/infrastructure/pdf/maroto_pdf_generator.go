// Package pdf implementa la generación de la carátula PDF de una póliza.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la correduría  │  N° Póliza + Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOMADOR: Nombre del cliente + contacto                     │
//	│  ASEGURADORA: Nombre + tipo de seguro                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VIGENCIA: fecha inicio / fecha fin                         │
//	│  PRIMA: monto asegurado                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda informativa                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/distrito-diamante/crm-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 11, Green: 83, Blue: 148}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const nombreCorreduria = "Distrito Diamante Seguros"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera la carátula de una póliza usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarCaratula genera el PDF de la póliza y devuelve sus bytes. La póliza
// debe venir con los nombres derivados resueltos (cliente, aseguradora, tipo
// y estado).
func (g *MarotoPDFGenerator) GenerarCaratula(p *entity.Poliza, cliente *entity.Cliente) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carátula de Póliza "+p.NumeroPoliza, true).
		WithAuthor(nombreCorreduria, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tomadorRow(p, cliente))
	m.AddRows(aseguradoraRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(vigenciaRow(p))
	m.AddRows(primaRow(p))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: correduría (izq) y número de póliza + estado (der).
func headerRow(p *entity.Poliza) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nombreCorreduria, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Correduría de seguros", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CARÁTULA DE PÓLIZA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(p.NumeroPoliza, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Estado: "+nonEmpty(p.EstadoNombre, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tomadorRow: datos del cliente tomador.
func tomadorRow(p *entity.Poliza, cliente *entity.Cliente) core.Row {
	contacto := "—"
	if cliente != nil {
		contacto = fmt.Sprintf("Documento: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(cliente.DocumentoIdentificacion, "—"),
			nonEmpty(cliente.Correo, "—"),
			nonEmpty(cliente.Telefono, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TOMADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(p.ClienteNombre, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// aseguradoraRow: aseguradora emisora y tipo de seguro.
func aseguradoraRow(p *entity.Poliza) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ASEGURADORA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Ramo: %s",
				nonEmpty(p.AseguradoraNombre, "—"),
				nonEmpty(p.TipoSeguroNombre, "—"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// vigenciaRow: periodo de cobertura.
func vigenciaRow(p *entity.Poliza) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("INICIO DE VIGENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.FechaInicio.Format("02/01/2006"), props.Text{Size: 10, Top: 6}),
		),
		col.New(6).Add(
			text.New("FIN DE VIGENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.FechaFin.Format("02/01/2006"), props.Text{Size: 10, Top: 6}),
		),
	)
}

// primaRow: monto asegurado destacado a la derecha.
func primaRow(p *entity.Poliza) core.Row {
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("PRIMA:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(p.Monto.StringFixed(2)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda informativa.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento es una carátula informativa generada por el sistema de gestión. "+
				"Las condiciones contractuales completas constan en la póliza emitida por la aseguradora.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un string numérico
// con decimales separados por punto. Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	entero, dec := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			entero, dec = s[:i], s[i+1:]
			break
		}
	}
	n := len(entero)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, entero[i])
		}
		entero = string(buf)
	}
	if dec == "" {
		return entero
	}
	return entero + "," + dec
}
