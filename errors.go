package subwayplanner

import "fmt"

// EmptyDatasetError indicates the upstream fetch produced no subway lines.
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string { return "empty dataset: no subway lines loaded" }

// UnknownStopError indicates a stop name or id that does not resolve
// against the catalog.
type UnknownStopError struct{ Stop string }

func (e *UnknownStopError) Error() string { return fmt.Sprintf("unknown stop: %q", e.Stop) }

// NoRouteError indicates the search exhausted the graph without reaching
// the destination.
type NoRouteError struct{ From, To string }

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route found between %q and %q", e.From, e.To)
}
