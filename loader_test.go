package bubbleboard

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/bubbleboard/date"
)

// writeCSV writes a temp CSV source and returns its path.
func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const csvHeader = "Category,Project / Item,Current Status,Start Date,Target End Date,Estimated Cost ($),Dependencies / Prerequisites,Next Action,Priority"

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), "", DefaultColumns())
	if err == nil || !strings.Contains(err.Error(), "source not found") {
		t.Errorf("Load() error = %v, want a source not found error", err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.pdf")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, "", DefaultColumns())
	if err == nil || !strings.Contains(err.Error(), "unsupported source format") {
		t.Errorf("Load() error = %v, want an unsupported format error", err)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeCSV(t,
		"Category,Project / Item,Current Status",
		"Garden,Paint fence,Todo",
	)
	records, err := Load(path, "", DefaultColumns())
	if records != nil {
		t.Errorf("Load() = %d records, want none on schema error", len(records))
	}
	if err == nil {
		t.Fatal("Load() expected a schema error")
	}
	// Every missing name must be enumerated, not just the first.
	for _, col := range []string{ColPriority, ColStartDate, ColTargetEndDate, ColEstimatedCost, ColDependencies, ColNextAction} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("Load() error %q does not mention missing column %q", err, col)
		}
	}
}

func TestLoad(t *testing.T) {
	path := writeCSV(t,
		csvHeader,
		`Garden,Paint fence,Todo,2025-08-01,2025-09-15,"$1,200.50",,Buy paint,Medium`,
		"House,Fix roof,In progress,bogus,2025-09-01,nan,Scaffolding,Call roofer,1",
		"Admin,File taxes,Todo,,,,,,", // all optional fields blank
	)

	records, err := Load(path, "", DefaultColumns())
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Load() = %d records, want 3", len(records))
	}

	// IDs are the contiguous range 1..N assigned in load order, pre-sort.
	got := ids(records)
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Load() ids = %v, want 1..3", got)
	}

	// Canonical order: rank 1 first, then rank 2, unranked last.
	if records[0].Title != "Fix roof" || records[1].Title != "Paint fence" || records[2].Title != "File taxes" {
		t.Errorf("Load() order = %q, %q, %q", records[0].Title, records[1].Title, records[2].Title)
	}

	// And the sorted rows keep their load-time identity.
	if records[0].ID != 2 {
		t.Errorf("Fix roof id = %d, want 2", records[0].ID)
	}

	fence := records[1]
	if fence.PriorityRank != 2 {
		t.Errorf("Paint fence rank = %d, want 2", fence.PriorityRank)
	}
	if !fence.EstimatedCost.Valid || fence.EstimatedCost.Decimal.String() != "1200.5" {
		t.Errorf("Paint fence cost = %v, want 1200.5", fence.EstimatedCost)
	}
	if fence.StartDate != date.New(2025, 8, 1) || fence.TargetEndDate != date.New(2025, 9, 15) {
		t.Errorf("Paint fence dates = %v, %v", fence.StartDate, fence.TargetEndDate)
	}

	roof := records[0]
	if !roof.StartDate.IsZero() {
		// The malformed date degrades only that field, not the row.
		t.Errorf("Fix roof start = %v, want absent", roof.StartDate)
	}
	if roof.EstimatedCost.Valid {
		t.Errorf("Fix roof cost = %v, want absent", roof.EstimatedCost)
	}

	taxes := records[2]
	if taxes.PriorityRank != UnrankedPriority {
		t.Errorf("File taxes rank = %d, want %d", taxes.PriorityRank, UnrankedPriority)
	}
	if taxes.Status != "Todo" || taxes.NextAction != "" || taxes.Dependencies != "" {
		t.Errorf("File taxes fields = %+v", taxes)
	}
}

// Header names trim incidental whitespace but are not case-folded.
func TestLoadHeaderTrimming(t *testing.T) {
	path := writeCSV(t,
		"  Category ,Project / Item,Current Status,Start Date,Target End Date,Estimated Cost ($),Dependencies / Prerequisites,Next Action,  Priority  ",
		"Garden,Paint fence,Todo,,,,,,High",
	)
	records, err := Load(path, "", DefaultColumns())
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if records[0].Category != "Garden" || records[0].PriorityRank != 1 {
		t.Errorf("Load() record = %+v", records[0])
	}

	lower := writeCSV(t, strings.ToLower(csvHeader), "Garden,Paint fence,Todo,,,,,,High")
	if _, err := Load(lower, "", DefaultColumns()); err == nil {
		t.Error("Load() accepted case-folded headers, want a schema error")
	}
}

func TestLoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.xlsx")

	f := excelize.NewFile()
	header := []any{}
	for _, col := range DefaultColumns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatal(err)
	}
	row := []any{"Garden", "Paint fence", "Todo", "2025-08-01", "2025-09-15", "1200", "", "Buy paint", "High"}
	if err := f.SetSheetRow("Sheet1", "A2", &row); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path, "", DefaultColumns())
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Load() = %d records, want 1", len(records))
	}
	r := records[0]
	if r.Title != "Paint fence" || r.PriorityRank != 1 || r.TargetEndDate != date.New(2025, 9, 15) {
		t.Errorf("Load() record = %+v", r)
	}
}
