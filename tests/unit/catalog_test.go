package unit

import (
	"errors"
	"reflect"
	"testing"

	subwayplanner "github.com/theoremus-urban-solutions/subway-planner"
	"github.com/theoremus-urban-solutions/subway-planner/tests/helpers"
)

func TestNewCatalog_EmptyDataset(t *testing.T) {
	_, err := subwayplanner.NewCatalog(nil, nil)
	if err == nil {
		t.Fatal("expected error for empty dataset")
	}
	var emptyErr *subwayplanner.EmptyDatasetError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyDatasetError, got %T: %v", err, err)
	}
}

func TestCatalog_StopCount(t *testing.T) {
	c := helpers.NewBostonCatalog(t)

	tests := []struct {
		lineID string
		want   int
	}{
		{"Red", 5},
		{"Green", 4},
		{"Blue", 2},
		{"Purple", 0}, // unknown line
	}
	for _, tc := range tests {
		if got := c.StopCount(tc.lineID); got != tc.want {
			t.Errorf("StopCount(%q) = %d, expected %d", tc.lineID, got, tc.want)
		}
	}
}

func TestCatalog_Extremes(t *testing.T) {
	c := helpers.NewBostonCatalog(t)

	maxLines, maxCount := c.MaxStopsLines()
	if maxCount != 5 || len(maxLines) != 1 || maxLines[0].ID != "Red" {
		t.Errorf("MaxStopsLines = %v (%d), expected [Red] with 5", maxLines, maxCount)
	}
	minLines, minCount := c.MinStopsLines()
	if minCount != 2 || len(minLines) != 1 || minLines[0].ID != "Blue" {
		t.Errorf("MinStopsLines = %v (%d), expected [Blue] with 2", minLines, minCount)
	}
}

func TestCatalog_ExtremesPreserveTies(t *testing.T) {
	lines := []subwayplanner.Line{
		{ID: "A", Name: "A Line", StopIDs: []string{"a1", "a2", "a3"}},
		{ID: "B", Name: "B Line", StopIDs: []string{"b1", "b2", "b3"}},
		{ID: "C", Name: "C Line", StopIDs: []string{"c1"}},
		{ID: "D", Name: "D Line", StopIDs: []string{"d1"}},
	}
	c := helpers.NewCatalog(t, lines, nil)

	maxLines, maxCount := c.MaxStopsLines()
	if maxCount != 3 {
		t.Fatalf("max count = %d, expected 3", maxCount)
	}
	if ids := lineIDs(maxLines); !reflect.DeepEqual(ids, []string{"A", "B"}) {
		t.Errorf("max lines = %v, expected [A B]", ids)
	}

	minLines, minCount := c.MinStopsLines()
	if minCount != 1 {
		t.Fatalf("min count = %d, expected 1", minCount)
	}
	if ids := lineIDs(minLines); !reflect.DeepEqual(ids, []string{"C", "D"}) {
		t.Errorf("min lines = %v, expected [C D]", ids)
	}
}

func TestCatalog_TransferStops(t *testing.T) {
	c := helpers.NewBostonCatalog(t)

	got := c.TransferStops()
	want := map[string][]string{
		"place-pktrm": {"Green", "Red"},
		"place-gover": {"Blue", "Green"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TransferStops = %v, expected %v", got, want)
	}
}

func TestCatalog_TransferStops_NoneWhenDisjoint(t *testing.T) {
	lines := []subwayplanner.Line{
		{ID: "A", Name: "A Line", StopIDs: []string{"a1", "a2"}},
		{ID: "B", Name: "B Line", StopIDs: []string{"b1", "b2"}},
	}
	c := helpers.NewCatalog(t, lines, nil)
	if got := c.TransferStops(); len(got) != 0 {
		t.Errorf("TransferStops = %v, expected empty", got)
	}
}

func TestCatalog_MembershipIndex(t *testing.T) {
	c := helpers.NewBostonCatalog(t)

	tests := []struct {
		stopID string
		want   []string
	}{
		{"place-pktrm", []string{"Green", "Red"}},
		{"place-alfcl", []string{"Red"}},
		{"place-gover", []string{"Blue", "Green"}},
		{"place-nowhere", nil},
	}
	for _, tc := range tests {
		if got := c.LinesAt(tc.stopID); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("LinesAt(%q) = %v, expected %v", tc.stopID, got, tc.want)
		}
	}
}

func TestCatalog_ResolveStop(t *testing.T) {
	c := helpers.NewBostonCatalog(t)

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"Park Street", "place-pktrm", false},
		{"park street", "place-pktrm", false},
		{"  PARK   STREET ", "place-pktrm", false},
		{"place-davis", "place-davis", false}, // raw id accepted
		{"Kendall", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := c.ResolveStop(tc.name)
		if tc.wantErr {
			var unknown *subwayplanner.UnknownStopError
			if !errors.As(err, &unknown) {
				t.Errorf("ResolveStop(%q): expected UnknownStopError, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveStop(%q): unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveStop(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestCatalog_DeduplicatesLineStops(t *testing.T) {
	lines := []subwayplanner.Line{
		{ID: "A", Name: "A Line", StopIDs: []string{"a1", "a2", "a1", "a2", "a3"}},
	}
	c := helpers.NewCatalog(t, lines, nil)
	if got := c.StopCount("A"); got != 3 {
		t.Errorf("StopCount(A) = %d, expected 3 after dedup", got)
	}
}

func lineIDs(lines []subwayplanner.Line) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.ID
	}
	return out
}
