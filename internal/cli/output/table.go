package output

import (
	"fmt"
	"io"

	"github.com/kataras/tablewriter"
	"github.com/lensesio/tableprinter"
)

// TableFormatter formats data as a bordered table.
type TableFormatter struct {
	Wide  bool
	Color bool
}

// Format prints data as a table. Rower values are converted first. Strings
// print as a single line. Anything else goes to tableprinter as-is, which
// handles structs and slices of structs with `header` tags.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch v := data.(type) {
	case Rower:
		data = v.Rows(f.Wide)
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}

	printer := tableprinter.New(w)
	printer.BorderTop, printer.BorderBottom, printer.BorderLeft, printer.BorderRight = true, true, true, true
	printer.CenterSeparator = "│"
	printer.ColumnSeparator = "│"
	printer.RowSeparator = "─"
	if f.Color {
		printer.HeaderBgColor = tablewriter.BgBlackColor
		printer.HeaderFgColor = tablewriter.FgGreenColor
	}
	printer.Print(data)
	return nil
}
