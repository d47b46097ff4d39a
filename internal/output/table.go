package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style

	// KeyStyle, when set, styles the first column of body rows.
	KeyStyle *lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(ColorBlue).Padding(0, 1),
		CellStyle:   lipgloss.NewStyle().Padding(0, 1),
	}
}

// Table is a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.style.HeaderStyle
			case col == 0 && t.style.KeyStyle != nil:
				return *t.style.KeyStyle
			default:
				return t.style.CellStyle
			}
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// KeyValueTable renders a two-column table with bold keys, used for the
// configuration summary.
func KeyValueTable(header [2]string, rows [][2]string) string {
	style := DefaultTableStyle()
	key := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	style.KeyStyle = &key

	t := NewTable(header[0], header[1]).SetStyle(style)
	for _, r := range rows {
		t.Row(r[0], r[1])
	}
	return t.String()
}
