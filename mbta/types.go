package mbta

// GTFS route_type values used by the MBTA /routes endpoint. Subway service
// is light rail (Green, Mattapan) plus heavy rail (Red, Orange, Blue).
const (
	RouteTypeLightRail = 0
	RouteTypeHeavyRail = 1
)

// StopAttributes carries the stop fields the planner consumes.
type StopAttributes struct {
	Name string `json:"name"`
}

// StopData is one stop resource from a /stops response.
type StopData struct {
	ID         string         `json:"id"`
	Attributes StopAttributes `json:"attributes"`
}

// StopsResponse is the shape of /stops query responses.
type StopsResponse struct {
	Data []StopData `json:"data"`
}

// RouteAttributes carries the route fields returned by /routes.
type RouteAttributes struct {
	Color                 string   `json:"color"`
	Description           string   `json:"description"`
	DirectionDestinations []string `json:"direction_destinations"`
	DirectionNames        []string `json:"direction_names"`
	FareClass             string   `json:"fare_class"`
	LongName              string   `json:"long_name"`
	ShortName             string   `json:"short_name"`
	SortOrder             int      `json:"sort_order"`
	TextColor             string   `json:"text_color"`
	Type                  int      `json:"type"`
}

// RouteData is one route resource from a /routes response.
type RouteData struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes RouteAttributes `json:"attributes"`
}

// RoutesResponse is the shape of /routes query responses.
type RoutesResponse struct {
	Data []RouteData `json:"data"`
}
