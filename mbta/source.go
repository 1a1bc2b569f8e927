package mbta

import (
	"context"

	subwayplanner "github.com/theoremus-urban-solutions/subway-planner"
)

// SubwayLines returns light- and heavy-rail routes as catalog line records,
// satisfying subwayplanner.TransitSource. Filtering happens server side so
// only subway data crosses the network.
func (c *Client) SubwayLines(ctx context.Context) ([]subwayplanner.LineRecord, error) {
	resp, err := c.GetRoutes(ctx, []int{RouteTypeLightRail, RouteTypeHeavyRail})
	if err != nil {
		return nil, err
	}
	records := make([]subwayplanner.LineRecord, 0, len(resp.Data))
	for _, r := range resp.Data {
		records = append(records, subwayplanner.LineRecord{ID: r.ID, Name: r.Attributes.LongName})
	}
	return records, nil
}

// StopsForLine returns the member stops of one route, in route order.
func (c *Client) StopsForLine(ctx context.Context, lineID string) ([]subwayplanner.StopRecord, error) {
	resp, err := c.GetStops(ctx, []string{lineID})
	if err != nil {
		return nil, err
	}
	records := make([]subwayplanner.StopRecord, 0, len(resp.Data))
	for _, s := range resp.Data {
		records = append(records, subwayplanner.StopRecord{ID: s.ID, Name: s.Attributes.Name})
	}
	return records, nil
}
