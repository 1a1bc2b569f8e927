package subwayplanner

import "sort"

// Hop is one traversal step: the stop arrived at and the line ridden to
// reach it.
type Hop struct {
	Stop string
	Line string
}

// Route is an ordered hop sequence. A route with no hops means start and
// destination are the same stop.
type Route struct {
	Start string
	Hops  []Hop
}

// End returns the final stop of the route.
func (r Route) End() string {
	if len(r.Hops) == 0 {
		return r.Start
	}
	return r.Hops[len(r.Hops)-1].Stop
}

type searchState struct {
	stop string
	hops []Hop
}

// FindRoute searches the graph breadth-first from start to end. At every
// stop the incident edges are expanded with the current line first, so the
// traversal prefers staying on the line it arrived on over transferring; it
// still explores transfers once same-line options are queued. Each stop is
// expanded at most once, which bounds the search on cyclic graphs. The
// result is a valid route, not necessarily the shortest in hops or changes.
func FindRoute(g *Graph, start, end string) (Route, error) {
	if !g.HasStop(start) {
		return Route{}, &UnknownStopError{Stop: start}
	}
	if !g.HasStop(end) {
		return Route{}, &UnknownStopError{Stop: end}
	}

	visited := map[string]bool{}
	queue := []searchState{{stop: start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.stop == end {
			return Route{Start: start, Hops: cur.hops}, nil
		}
		if visited[cur.stop] {
			continue
		}
		visited[cur.stop] = true

		currentLine := ""
		if len(cur.hops) > 0 {
			currentLine = cur.hops[len(cur.hops)-1].Line
		}
		for _, next := range expansionOrder(g.Neighbors(cur.stop), currentLine) {
			if visited[next.Stop] {
				continue
			}
			hops := make([]Hop, len(cur.hops)+1)
			copy(hops, cur.hops)
			hops[len(cur.hops)] = next
			queue = append(queue, searchState{stop: next.Stop, hops: hops})
		}
	}
	return Route{}, &NoRouteError{From: start, To: end}
}

// expansionOrder flattens edges into (stop, line) pairs: pairs on the
// current line first, then the rest ordered by line and stop. Go maps
// iterate in random order, so the ordering here is what makes the
// same-line preference observable and results reproducible.
func expansionOrder(edges []Edge, currentLine string) []Hop {
	pairs := make([]Hop, 0, len(edges))
	for _, e := range edges {
		for _, id := range e.Lines {
			pairs = append(pairs, Hop{Stop: e.To, Line: id})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		iSwitch := pairs[i].Line != currentLine
		jSwitch := pairs[j].Line != currentLine
		if iSwitch != jSwitch {
			return !iSwitch
		}
		if pairs[i].Line != pairs[j].Line {
			return pairs[i].Line < pairs[j].Line
		}
		return pairs[i].Stop < pairs[j].Stop
	})
	return pairs
}
