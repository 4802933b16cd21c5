package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/mamadbah2/simcc/internal/domain/models"
)

const (
	dateLayout  = "02/01/2006"
	clearScreen = "\033[H\033[2J"
)

var listHeaders = []string{"Producer", "Area (ha)", "Volume (t)", "Loss (%)", "Efficiency", "Date"}

// palette renders status messages for one output stream. Colors are dropped
// automatically when the stream is not a terminal.
type palette struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	failure  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		renderer: r,
		title:    r.NewStyle().Bold(true),
		success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
		failure:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (p palette) heading(msg string) string { return p.title.Render(msg) }
func (p palette) ok(msg string) string      { return p.success.Render(msg) }
func (p palette) warn(msg string) string    { return p.warning.Render(msg) }
func (p palette) fail(msg string) string    { return p.failure.Render(msg) }

// renderListing draws the records table.
func (p palette) renderListing(listings []models.HarvestListing) string {
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			l.Producer,
			fmt.Sprintf("%.2f", l.Area),
			fmt.Sprintf("%.2f", l.Volume),
			fmt.Sprintf("%.2f", l.LossPct),
			string(l.Efficiency),
			l.RegisteredAt.Local().Format(dateLayout),
		})
	}

	cell := p.renderer.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.renderer.NewStyle()).
		Headers(listHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.Render()
}

// terminalClearer returns a function clearing w when it is an interactive terminal.
func terminalClearer(w io.Writer) func() {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return func() {}
	}
	return func() { fmt.Fprint(f, clearScreen) }
}
