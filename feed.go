package subwayplanner

import "context"

// LineRecord is the minimal line shape the core expects from a data source.
type LineRecord struct {
	ID   string
	Name string
}

// StopRecord is the minimal stop shape the core expects from a data source.
type StopRecord struct {
	ID   string
	Name string
}

// TransitSource fetches subway data from a transit authority. The source is
// responsible for filtering to subway service; mbta.Client satisfies this.
type TransitSource interface {
	SubwayLines(ctx context.Context) ([]LineRecord, error)
	StopsForLine(ctx context.Context, lineID string) ([]StopRecord, error)
}

// Dataset is one fetched snapshot of the subway network, ready to build a
// catalog from. It is also the payload persisted by the snapshot store.
type Dataset struct {
	Lines     []Line            `json:"lines"`
	StopNames map[string]string `json:"stop_names"`
}

// FetchDataset pulls the subway lines and their member stops from the
// source. Fetch failures pass through untouched; retries are the source's
// concern.
func FetchDataset(ctx context.Context, src TransitSource) (*Dataset, error) {
	records, err := src.SubwayLines(ctx)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{StopNames: map[string]string{}}
	for _, rec := range records {
		stops, err := src.StopsForLine(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		line := Line{ID: rec.ID, Name: rec.Name}
		for _, s := range stops {
			line.StopIDs = append(line.StopIDs, s.ID)
			ds.StopNames[s.ID] = s.Name
		}
		ds.Lines = append(ds.Lines, line)
	}
	return ds, nil
}

// NewCatalogFromDataset builds a catalog from a fetched or cached snapshot.
func NewCatalogFromDataset(ds *Dataset) (*Catalog, error) {
	return NewCatalog(ds.Lines, ds.StopNames)
}
