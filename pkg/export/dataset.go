package export

// Dataset is the tabular payload shared by every renderer. Rows are keyed by
// header so reports can build them without caring about column order.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Record returns the row values ordered by Headers.
func (d Dataset) Record(row map[string]string) []string {
	record := make([]string, len(d.Headers))
	for i, header := range d.Headers {
		record[i] = row[header]
	}
	return record
}

// Append adds a row built from positional values. Extra values are ignored.
func (d *Dataset) Append(values ...string) {
	row := make(map[string]string, len(d.Headers))
	for i, header := range d.Headers {
		if i < len(values) {
			row[header] = values[i]
		}
	}
	d.Rows = append(d.Rows, row)
}
