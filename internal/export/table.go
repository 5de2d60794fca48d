package export

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/OpenTraceLab/devfile/pkg/devicemodel"
)

// RenderPins prints one row per alternate function, grouped by pin. Pins
// without bindings get a single row.
func RenderPins(w io.Writer, d *devicemodel.Device) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pin", "Peripheral", "Signal", "Type", "Selector"})

	for _, g := range d.GPIOs {
		afs := d.AlternateFunctionsOf(g)
		if len(afs) == 0 {
			t.AppendRow(table.Row{g.String(), "", "", "", ""})
			continue
		}
		for _, af := range afs {
			t.AppendRow(table.Row{g.String(), af.Peripheral, af.Name, string(af.Type), af.ID})
		}
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, AutoMerge: true}})
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d pins, %d alternate functions)\n", len(d.GPIOs), len(d.GPIOAlternateFunctions))
}

// RenderMemory prints the memory map of d.
func RenderMemory(w io.Writer, d *devicemodel.Device) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Region", "Access", "Start", "End", "Size"})

	for _, m := range d.Memories {
		t.AppendRow(table.Row{m.Name, m.Access, m.Start.String(), m.End().String(), formatSize(m.Size)})
	}
	t.AppendFooter(table.Row{"", "", "", "RAM", formatSize(d.RAM)})
	t.AppendFooter(table.Row{"", "", "", "Flash", formatSize(d.Flash)})
	t.Render()
}

func formatSize(n uint64) string {
	if n%1024 == 0 {
		return fmt.Sprintf("%d KiB", n/1024)
	}
	return fmt.Sprintf("%d B", n)
}
