package statements

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

const csvBufferSize = 32 * 1024

// WriteCSV streams every statement as Statement,Section,Depth,ID,Label,Value rows.
func WriteCSV(w io.Writer, set Set) error {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true

	if err := writer.Write([]string{"Statement", "Section", "Depth", "ID", "Label", "Value"}); err != nil {
		return err
	}
	for _, st := range []Statement{set.CashFlow, set.Income, set.Balance} {
		for _, section := range st.Sections {
			var werr error
			Walk([]Row{section}, func(r Row, depth int) {
				if werr != nil {
					return
				}
				werr = writer.Write([]string{
					st.Title,
					section.Label,
					strconv.Itoa(depth),
					r.ID,
					strings.Repeat("  ", depth) + r.Label,
					r.Value.String(),
				})
			})
			if werr != nil {
				return werr
			}
		}
		for _, total := range st.Totals {
			if err := writer.Write([]string{st.Title, "Totals", "0", "", total.Label, total.Value.String()}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return buf.Flush()
}
