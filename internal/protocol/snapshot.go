package protocol

type RoomLite struct {
	RegionID int            `json:"regionId"`
	Name     string         `json:"name"`
	Counts   map[string]int `json:"counts"`
}

// PlanSnapshot is the full viewer state for one analyzed floor plan.
type PlanSnapshot struct {
	Plan            []string       `json:"plan"`
	MapWidth        int            `json:"mapWidth"`
	MapHeight       int            `json:"mapHeight"`
	RegionsCount    int            `json:"regionsCount"`
	CellRegionIDs   []int          `json:"cellRegionIds"`
	Rooms           []RoomLite     `json:"rooms"`
	Totals          map[string]int `json:"totals"`
	Report          string         `json:"report"`
	Warnings        []string       `json:"warnings,omitempty"`
	ProtocolVersion string         `json:"protocolVersion"`
}
