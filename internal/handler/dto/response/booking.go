package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID     uuid.UUID       `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   ItemRefResponse `json:"item"`
	Booker UserRefResponse `json:"booker"`
}

type ItemRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     rm.ID,
		Start:  rm.Start,
		End:    rm.End,
		Status: rm.Status,
		Item:   ItemRefResponse{ID: rm.Item.ID, Name: rm.Item.Name},
		Booker: UserRefResponse{ID: rm.Booker.ID, Name: rm.Booker.Name},
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingView(rm)
	}
	return out
}
