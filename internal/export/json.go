package export

import (
	"bytes"
	"encoding/json"
)

// JSON renders the report as a two-group object with 2-space indentation.
// The object is emitted by hand because encoding/json sorts map keys,
// and the report rows must keep their declared order.
func JSON(r Report) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("{\n")

	if err := writeGroup(&b, "Input Metrics", r.Inputs, true); err != nil {
		return nil, err
	}
	if err := writeGroup(&b, "Calculated Metrics", r.Calculated, false); err != nil {
		return nil, err
	}

	b.WriteString("}\n")
	return b.Bytes(), nil
}

func writeGroup(b *bytes.Buffer, name string, rows []Row, comma bool) error {
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	b.WriteString("  ")
	b.Write(key)
	b.WriteString(": {\n")

	for i, row := range rows {
		label, err := json.Marshal(row.Label)
		if err != nil {
			return err
		}
		value, err := json.Marshal(row.Value)
		if err != nil {
			return err
		}
		b.WriteString("    ")
		b.Write(label)
		b.WriteString(": ")
		b.Write(value)
		if i < len(rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString("  }")
	if comma {
		b.WriteString(",")
	}
	b.WriteString("\n")
	return nil
}
