package helpers

import (
	"testing"

	subwayplanner "github.com/theoremus-urban-solutions/subway-planner"
)

// BostonLines returns a small Boston-shaped network. Park Street joins Red
// and Green, Government Center joins Green and Blue; Alewife..Harvard are
// Red-only, Boylston and Lechmere Green-only, Wonderland Blue-only.
func BostonLines() ([]subwayplanner.Line, map[string]string) {
	lines := []subwayplanner.Line{
		{ID: "Red", Name: "Red Line", StopIDs: []string{
			"place-alfcl", "place-davis", "place-portr", "place-harsq", "place-pktrm",
		}},
		{ID: "Green", Name: "Green Line", StopIDs: []string{
			"place-lech", "place-pktrm", "place-gover", "place-boyls",
		}},
		{ID: "Blue", Name: "Blue Line", StopIDs: []string{
			"place-wondl", "place-gover",
		}},
	}
	stopNames := map[string]string{
		"place-alfcl": "Alewife",
		"place-davis": "Davis",
		"place-portr": "Porter",
		"place-harsq": "Harvard",
		"place-pktrm": "Park Street",
		"place-lech":  "Lechmere",
		"place-gover": "Government Center",
		"place-boyls": "Boylston",
		"place-wondl": "Wonderland",
	}
	return lines, stopNames
}

// NewBostonCatalog builds a catalog from the Boston fixture.
func NewBostonCatalog(t *testing.T) *subwayplanner.Catalog {
	t.Helper()
	lines, stopNames := BostonLines()
	c, err := subwayplanner.NewCatalog(lines, stopNames)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

// NewBostonPlanner builds a planner from the Boston fixture.
func NewBostonPlanner(t *testing.T) *subwayplanner.Planner {
	t.Helper()
	return subwayplanner.NewPlanner(NewBostonCatalog(t))
}

// NewCatalog builds a catalog from arbitrary lines, failing the test on error.
func NewCatalog(t *testing.T, lines []subwayplanner.Line, stopNames map[string]string) *subwayplanner.Catalog {
	t.Helper()
	c, err := subwayplanner.NewCatalog(lines, stopNames)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}
