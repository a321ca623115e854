package report_occupancy

import (
	"strconv"

	"github.com/NPaugust/Femida-sub000/internal/domain"
)

// BuildingOccupancyResponse срез занятости по одному корпусу
type BuildingOccupancyResponse struct {
	Total            int `json:"total"`
	Occupied         int `json:"occupied"`
	Free             int `json:"free"`
	UnderMaintenance int `json:"underMaintenance"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	At               string                               `json:"at"`
	Total            int                                  `json:"total"`
	Occupied         int                                  `json:"occupied"`
	Free             int                                  `json:"free"`
	UnderMaintenance int                                  `json:"underMaintenance"`
	OccupancyRate    float64                              `json:"occupancyRate"`
	ByBuilding       map[string]BuildingOccupancyResponse `json:"byBuilding"`
}

func toResponse(snapshot *domain.OccupancySnapshot) *OccupancyResponse {
	byBuilding := make(map[string]BuildingOccupancyResponse, len(snapshot.ByBuilding))
	for buildingID, occ := range snapshot.ByBuilding {
		byBuilding[strconv.FormatInt(buildingID, 10)] = BuildingOccupancyResponse{
			Total:            occ.Total,
			Occupied:         occ.Occupied,
			Free:             occ.Free,
			UnderMaintenance: occ.UnderMaintenance,
		}
	}
	return &OccupancyResponse{
		At:               snapshot.At.Format(domain.DateFormat),
		Total:            snapshot.Total,
		Occupied:         snapshot.Occupied,
		Free:             snapshot.Free,
		UnderMaintenance: snapshot.UnderMaintenance,
		OccupancyRate:    snapshot.OccupancyRate(),
		ByBuilding:       byBuilding,
	}
}
