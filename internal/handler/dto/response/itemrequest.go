package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID             `json:"id"`
	Description string                `json:"description"`
	RequestorID uuid.UUID             `json:"requestorId"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

// RequestItemResponse is an item offered in answer to a request.
type RequestItemResponse struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	Name    string    `json:"name"`
}

func FromRequestView(rm *queries.RequestView) *ItemRequestResponse {
	items := make([]RequestItemResponse, len(rm.Items))
	for i, im := range rm.Items {
		items[i] = RequestItemResponse{ID: im.ID, OwnerID: im.OwnerID, Name: im.Name}
	}
	return &ItemRequestResponse{
		ID:          rm.ID,
		Description: rm.Description,
		RequestorID: rm.RequestorID,
		Created:     rm.Created,
		Items:       items,
	}
}

func FromRequestViews(rms []*queries.RequestView) []*ItemRequestResponse {
	out := make([]*ItemRequestResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRequestView(rm)
	}
	return out
}
