package dto

// DashboardResponse is the recruitment dashboard payload.
type DashboardResponse struct {
	TotalCandidates     int            `json:"totalCandidates"`
	TotalCommissionDue  int64          `json:"totalCommissionDue"`
	CountryHighlights   []CountMetric  `json:"countryHighlights"`
	StatusHighlights    []CountMetric  `json:"statusHighlights"`
	StatusDistribution  map[string]int `json:"statusDistribution"`
	CountryDistribution map[string]int `json:"countryDistribution"`
}

// CountMetric is a labelled count shown as a dashboard tile.
type CountMetric struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
