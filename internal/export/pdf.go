package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDF renders the report as a single-page document using maroto/v2.
func PDF(r Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addTitle(m, r)
	addSection(m, "Input Metrics", r.Inputs)
	addSection(m, "Calculated Metrics", r.Calculated)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addTitle(m core.Maroto, r Report) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(r.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04")), props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
		row.New(4),
	)
}

// addSection writes a bold section heading followed by one labeled line
// per row at fixed vertical offsets.
func addSection(m core.Maroto, heading string, rows []Row) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(heading, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	labelText := props.Text{Size: 9, Align: align.Left, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}
	valueText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	for _, line := range rows {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(line.Label, labelText)),
				col.New(4).Add(text.New(line.Value, valueText)),
			),
		)
	}

	m.AddRows(row.New(4))
}
