package subwayplanner

import (
	"sort"
	"strings"
)

// Line is one subway route with its member stops, in feed order.
type Line struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	StopIDs []string `json:"stop_ids"`
}

// Catalog stores the fetched subway lines in memory for fast lookups.
// Built once per run; read-only afterwards.
type Catalog struct {
	lines      []Line
	lineIdx    map[string]int                 // line_id -> position in lines
	stopNames  map[string]string              // stop_id -> display name
	stopLines  map[string]map[string]struct{} // stop_id -> set of line_ids
	nameToStop map[string]string              // normalized display name -> stop_id
}

// NewCatalog builds the catalog and its stop-to-lines membership index.
// Lines with duplicate stop entries are deduplicated, keeping feed order.
func NewCatalog(lines []Line, stopNames map[string]string) (*Catalog, error) {
	if len(lines) == 0 {
		return nil, &EmptyDatasetError{}
	}
	c := &Catalog{
		lines:      make([]Line, 0, len(lines)),
		lineIdx:    map[string]int{},
		stopNames:  map[string]string{},
		stopLines:  map[string]map[string]struct{}{},
		nameToStop: map[string]string{},
	}
	for id, name := range stopNames {
		c.stopNames[id] = name
	}
	for _, ln := range lines {
		seen := map[string]struct{}{}
		stops := make([]string, 0, len(ln.StopIDs))
		for _, sid := range ln.StopIDs {
			if _, dup := seen[sid]; dup {
				continue
			}
			seen[sid] = struct{}{}
			stops = append(stops, sid)
			set, ok := c.stopLines[sid]
			if !ok {
				set = map[string]struct{}{}
				c.stopLines[sid] = set
			}
			set[ln.ID] = struct{}{}
		}
		c.lineIdx[ln.ID] = len(c.lines)
		c.lines = append(c.lines, Line{ID: ln.ID, Name: ln.Name, StopIDs: stops})
	}
	for sid := range c.stopLines {
		if name, ok := c.stopNames[sid]; ok {
			c.nameToStop[normalizeStopName(name)] = sid
		}
	}
	return c, nil
}

func normalizeStopName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Lines returns all subway lines in feed order.
func (c *Catalog) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line with the given id.
func (c *Catalog) Line(id string) (Line, bool) {
	i, ok := c.lineIdx[id]
	if !ok {
		return Line{}, false
	}
	return c.lines[i], true
}

// StopCount returns the number of member stops of a line, 0 for unknown lines.
func (c *Catalog) StopCount(lineID string) int {
	i, ok := c.lineIdx[lineID]
	if !ok {
		return 0
	}
	return len(c.lines[i].StopIDs)
}

// StopName returns the display name for a stop id, falling back to the id.
func (c *Catalog) StopName(stopID string) string {
	if name, ok := c.stopNames[stopID]; ok {
		return name
	}
	return stopID
}

// LineName returns the display name for a line id, falling back to the id.
func (c *Catalog) LineName(lineID string) string {
	if i, ok := c.lineIdx[lineID]; ok && c.lines[i].Name != "" {
		return c.lines[i].Name
	}
	return lineID
}

// HasStop reports whether the stop belongs to any line in the catalog.
func (c *Catalog) HasStop(stopID string) bool {
	_, ok := c.stopLines[stopID]
	return ok
}

// LinesAt returns the membership-index entry for a stop: the ids of every
// line the stop belongs to, sorted. Unknown stops yield an empty slice.
func (c *Catalog) LinesAt(stopID string) []string {
	set, ok := c.stopLines[stopID]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// StopIDs returns every stop id in the catalog, sorted.
func (c *Catalog) StopIDs() []string {
	out := make([]string, 0, len(c.stopLines))
	for sid := range c.stopLines {
		out = append(out, sid)
	}
	sort.Strings(out)
	return out
}

// ResolveStop maps a display name to a stop id. The lookup is
// case-insensitive and whitespace-normalized; a raw stop id is accepted too.
func (c *Catalog) ResolveStop(name string) (string, error) {
	if sid, ok := c.nameToStop[normalizeStopName(name)]; ok {
		return sid, nil
	}
	if c.HasStop(name) {
		return name, nil
	}
	return "", &UnknownStopError{Stop: name}
}

// MaxStopsLines returns every line sharing the maximum stop count, in feed
// order, together with that count. Ties are preserved.
func (c *Catalog) MaxStopsLines() ([]Line, int) {
	return c.extremeLines(func(candidate, best int) bool { return candidate > best })
}

// MinStopsLines returns every line sharing the minimum stop count, in feed
// order, together with that count. Ties are preserved.
func (c *Catalog) MinStopsLines() ([]Line, int) {
	return c.extremeLines(func(candidate, best int) bool { return candidate < best })
}

func (c *Catalog) extremeLines(better func(candidate, best int) bool) ([]Line, int) {
	best := len(c.lines[0].StopIDs)
	for _, ln := range c.lines[1:] {
		if better(len(ln.StopIDs), best) {
			best = len(ln.StopIDs)
		}
	}
	var out []Line
	for _, ln := range c.lines {
		if len(ln.StopIDs) == best {
			out = append(out, ln)
		}
	}
	return out, best
}

// TransferStops returns every stop that belongs to two or more lines,
// mapped to the sorted ids of all lines serving it.
func (c *Catalog) TransferStops() map[string][]string {
	out := map[string][]string{}
	for sid, set := range c.stopLines {
		if len(set) < 2 {
			continue
		}
		out[sid] = c.LinesAt(sid)
	}
	return out
}
