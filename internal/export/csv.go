package export

import "strings"

// CSV renders the report as a two-column Metric,Value table: one header
// row and thirteen data rows. Values are comma-joined without quoting,
// so grouping commas are stripped from formatted amounts.
func CSV(r Report) []byte {
	var b strings.Builder
	b.WriteString("Metric,Value\n")

	for _, row := range append(append([]Row{}, r.Inputs...), r.Calculated...) {
		b.WriteString(row.Label)
		b.WriteString(",")
		b.WriteString(strings.ReplaceAll(row.Value, ",", ""))
		b.WriteString("\n")
	}

	return []byte(b.String())
}
