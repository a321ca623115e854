package list_available_rooms

import "github.com/NPaugust/Femida-sub000/internal/domain"

// RoomResponse HTTP модель номера
type RoomResponse struct {
	ID         int64  `json:"id"`
	BuildingID int64  `json:"buildingId"`
	Number     string `json:"number"`
	Class      string `json:"class"`
	Capacity   int    `json:"capacity"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

func toResponse(query domain.AvailabilityQuery, rooms []*domain.Room) *AvailableRoomsResponse {
	result := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = &RoomResponse{
			ID:         room.ID,
			BuildingID: room.BuildingID,
			Number:     room.Number,
			Class:      string(room.Class),
			Capacity:   room.Capacity,
		}
	}
	return &AvailableRoomsResponse{
		From:  query.Range.Start.Format(domain.DateFormat),
		To:    query.Range.End.Format(domain.DateFormat),
		Rooms: result,
		Total: len(result),
	}
}
