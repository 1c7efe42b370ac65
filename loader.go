package bubbleboard

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/bubbleboard/date"
)

// Load reads the source table, validates its schema, normalizes every field
// and returns the record set in canonical board order.
//
// Errors are returned as values and never abort unrelated records: a
// malformed date or cost degrades only that field to absent. A missing
// file, an unsupported format or missing required columns return no records
// and a descriptive error.
func Load(path, sheet string, requiredColumns []string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source not found at %s", path)
	}

	var header []string
	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		header, rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		header, rows, err = readWorkbook(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported source format %q (want .csv, .xlsx or .xlsm)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Header names are compared after trimming incidental whitespace, not
	// case-folded: a header mismatch should be visible, not papered over.
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[strings.TrimSpace(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		// Enumerate every missing name so one read of the error fixes the header.
		return nil, fmt.Errorf("missing required columns in the sheet: %s", strings.Join(missing, ", "))
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		cell := func(col string) string {
			idx, ok := index[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return Normalize(row[idx])
		}

		r := Record{
			ID:           i + 1, // 1-based row index in parsed order, pre-sort
			Category:     cell(ColCategory),
			Title:        cell(ColTitle),
			Status:       cell(ColStatus),
			NextAction:   cell(ColNextAction),
			Dependencies: cell(ColDependencies),
			Priority:     cell(ColPriority),
		}
		r.PriorityRank = Rank(r.Priority)
		r.StartDate, _ = date.ParseAny(cell(ColStartDate))
		r.TargetEndDate, _ = date.ParseAny(cell(ColTargetEndDate))
		r.EstimatedCost = parseNullDecimal(cell(ColEstimatedCost))

		records = append(records, r)
	}

	Sort(records)
	return records, nil
}

// readCSV parses a delimiter-based source into a header and data rows.
func readCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}
	return all[0], all[1:], nil
}

// readWorkbook parses a spreadsheet-binary source. It reads the named
// sheet, or the first sheet when no name is configured.
func readWorkbook(path, sheet string) (header []string, rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty sheet %q", sheet)
	}
	return all[0], all[1:], nil
}
