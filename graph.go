package subwayplanner

import "sort"

// Edge is one adjacency in the network graph: a directly reachable stop and
// the lines connecting the pair, sorted by line id.
type Edge struct {
	To    string
	Lines []string
}

// Graph is the stop-to-stop network derived from the catalog. Every pair of
// distinct stops on a line is connected by an edge labeled with that line,
// so a rider can board anywhere on a line and ride to any other stop on it
// without modeling the intermediate stations. This inflates edge count but
// not reachability.
type Graph struct {
	adj       map[string]map[string]map[string]struct{} // stop -> adjacent stop -> line set
	stopLines map[string][]string                       // stop -> sorted line ids
}

// BuildGraph constructs the undirected multigraph for the catalog. A stop
// served by a single one-stop line stays a valid degree-0 node.
func BuildGraph(c *Catalog) *Graph {
	g := &Graph{
		adj:       map[string]map[string]map[string]struct{}{},
		stopLines: map[string][]string{},
	}
	for _, sid := range c.StopIDs() {
		g.stopLines[sid] = c.LinesAt(sid)
	}
	for _, ln := range c.Lines() {
		for _, a := range ln.StopIDs {
			if _, ok := g.adj[a]; !ok {
				g.adj[a] = map[string]map[string]struct{}{}
			}
			for _, b := range ln.StopIDs {
				if a == b {
					continue
				}
				set, ok := g.adj[a][b]
				if !ok {
					set = map[string]struct{}{}
					g.adj[a][b] = set
				}
				set[ln.ID] = struct{}{}
			}
		}
	}
	return g
}

// HasStop reports whether the stop is a node of the graph.
func (g *Graph) HasStop(stopID string) bool {
	_, ok := g.stopLines[stopID]
	return ok
}

// Stops returns every node of the graph, sorted.
func (g *Graph) Stops() []string {
	out := make([]string, 0, len(g.stopLines))
	for sid := range g.stopLines {
		out = append(out, sid)
	}
	sort.Strings(out)
	return out
}

// LinesAt returns the ids of every line serving the stop, sorted.
func (g *Graph) LinesAt(stopID string) []string {
	lines := g.stopLines[stopID]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Neighbors returns the adjacency of a stop in deterministic order:
// adjacent stops ascending, line labels ascending within each edge.
func (g *Graph) Neighbors(stopID string) []Edge {
	nbrs, ok := g.adj[stopID]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(nbrs))
	for to, set := range nbrs {
		lines := make([]string, 0, len(set))
		for id := range set {
			lines = append(lines, id)
		}
		sort.Strings(lines)
		out = append(out, Edge{To: to, Lines: lines})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	return out
}
