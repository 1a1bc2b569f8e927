package subwayplanner

import "sort"

// LineSummary identifies one subway line for listing.
type LineSummary struct {
	ID   string
	Name string
}

// Extremes reports the lines with the most and the fewest stops. Ties are
// preserved on both ends.
type Extremes struct {
	MaxLines []Line
	MaxCount int
	MinLines []Line
	MinCount int
}

// Planner answers the three subway questions against one immutable
// catalog/graph snapshot. It holds no other state, so a single Planner can
// serve concurrent readers if embedded in a long-lived process.
type Planner struct {
	catalog *Catalog
	graph   *Graph
}

// NewPlanner builds the network graph for the catalog and returns the
// query façade.
func NewPlanner(c *Catalog) *Planner {
	return &Planner{catalog: c, graph: BuildGraph(c)}
}

// Catalog exposes the underlying line catalog.
func (p *Planner) Catalog() *Catalog { return p.catalog }

// Graph exposes the underlying network graph.
func (p *Planner) Graph() *Graph { return p.graph }

// ListSubwayLines returns the subway lines in feed order.
func (p *Planner) ListSubwayLines() []LineSummary {
	lines := p.catalog.Lines()
	out := make([]LineSummary, len(lines))
	for i, ln := range lines {
		out[i] = LineSummary{ID: ln.ID, Name: ln.Name}
	}
	return out
}

// StopExtremes returns the per-line stop-count extremes, ties included.
func (p *Planner) StopExtremes() Extremes {
	maxLines, maxCount := p.catalog.MaxStopsLines()
	minLines, minCount := p.catalog.MinStopsLines()
	return Extremes{
		MaxLines: maxLines,
		MaxCount: maxCount,
		MinLines: minLines,
		MinCount: minCount,
	}
}

// TransferStops maps the display name of each stop served by two or more
// lines to the sorted display names of those lines.
func (p *Planner) TransferStops() map[string][]string {
	out := map[string][]string{}
	for sid, lineIDs := range p.catalog.TransferStops() {
		names := make([]string, 0, len(lineIDs))
		for _, id := range lineIDs {
			names = append(names, p.catalog.LineName(id))
		}
		sort.Strings(names)
		out[p.catalog.StopName(sid)] = names
	}
	return out
}

// StopNames returns the display name of every stop, sorted, for listings.
func (p *Planner) StopNames() []string {
	ids := p.catalog.StopIDs()
	out := make([]string, 0, len(ids))
	for _, sid := range ids {
		out = append(out, p.catalog.StopName(sid))
	}
	sort.Strings(out)
	return out
}

// FindRoute resolves both stop names against the catalog and searches the
// graph. Unresolvable names surface as UnknownStopError.
func (p *Planner) FindRoute(startName, endName string) (Route, error) {
	start, err := p.catalog.ResolveStop(startName)
	if err != nil {
		return Route{}, err
	}
	end, err := p.catalog.ResolveStop(endName)
	if err != nil {
		return Route{}, err
	}
	return FindRoute(p.graph, start, end)
}
