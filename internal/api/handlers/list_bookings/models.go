package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/NPaugust/Femida-sub000/internal/domain"
	"github.com/NPaugust/Femida-sub000/internal/service/bookings/models"
	"github.com/NPaugust/Femida-sub000/pkg/ptr"
)

// BookingResponse HTTP модель бронирования в списке
type BookingResponse struct {
	ID                 int64   `json:"id"`
	RoomID             int64   `json:"roomId"`
	GuestID            int64   `json:"guestId"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	PeopleCount        int     `json:"peopleCount"`
	Status             string  `json:"status"`
	Comments           *string `json:"comments,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ParseListRequest разбирает query параметры в запрос сервиса
func ParseListRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if raw := query.Get("room_id"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || roomID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.RoomID = &roomID
	}

	if raw := query.Get("building_id"); raw != "" {
		buildingID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || buildingID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.BuildingID = &buildingID
	}

	if raw := query.Get("guest_id"); raw != "" {
		guestID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || guestID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.GuestID = &guestID
	}

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	if raw := query.Get("include_inactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	result := make([]*BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		result[i] = &BookingResponse{
			ID:                 b.ID,
			RoomID:             b.RoomID,
			GuestID:            b.GuestID,
			CheckIn:            b.CheckIn.Format(domain.DateFormat),
			CheckOut:           b.CheckOut.Format(domain.DateFormat),
			PeopleCount:        b.PeopleCount,
			Status:             b.Status,
			Comments:           b.Comments,
			CancellationReason: b.CancellationReason,
		}
	}
	return &BookingListResponse{Bookings: result, Total: resp.Total}
}
