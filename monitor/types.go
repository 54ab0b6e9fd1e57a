package monitor

// DepartureGroup is the merged set of upcoming departures sharing a route
// and direction at the monitored stop.
type DepartureGroup struct {
	// RouteName is the short route identifier, e.g. "25" or "U6".
	RouteName string
	// DirectionText is the normalized human-readable destination.
	DirectionText string
	// AlertText is an optional service-disruption note for the route;
	// empty when there is none.
	AlertText string
	// Countdowns holds minutes until each upcoming departure. Appended in
	// payload order during parsing; sorted ascending during assignment.
	Countdowns []int
}

// Raw API payload shapes. Field names follow the upstream monitor API;
// only the fields the parser reads are declared.

type stopResponse struct {
	Data struct {
		Monitors     []monitorRecord `json:"monitors"`
		TrafficInfos []trafficInfo   `json:"trafficInfos"`
	} `json:"data"`
}

type monitorRecord struct {
	Lines []lineRecord `json:"lines"`
}

type lineRecord struct {
	Name       string `json:"name"`
	Towards    string `json:"towards"`
	Departures struct {
		Departure []departureRecord `json:"departure"`
	} `json:"departures"`
}

type departureRecord struct {
	DepartureTime struct {
		Countdown *int `json:"countdown"`
	} `json:"departureTime"`
	Vehicle *vehicleRecord `json:"vehicle"`
}

type vehicleRecord struct {
	Name    string `json:"name"`
	Towards string `json:"towards"`
}

type trafficInfo struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	RelatedLines []string `json:"relatedLines"`
}
