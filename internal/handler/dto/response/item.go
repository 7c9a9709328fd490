package response

import (
	"time"

	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID         `json:"id"`
	OwnerID     uuid.UUID         `json:"ownerId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *uuid.UUID        `json:"requestId,omitempty"`
	LastBooking *time.Time        `json:"lastBooking,omitempty"`
	NextBooking *time.Time        `json:"nextBooking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	comments := make([]CommentResponse, len(rm.Comments))
	for i, cm := range rm.Comments {
		comments[i] = CommentResponse{
			ID:         cm.ID,
			Text:       cm.Text,
			AuthorName: cm.AuthorName,
			Created:    cm.Created,
		}
	}
	return &ItemResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		Name:        rm.Name,
		Description: rm.Description,
		Available:   rm.Available,
		RequestID:   rm.RequestID,
		LastBooking: rm.LastBooking,
		NextBooking: rm.NextBooking,
		Comments:    comments,
	}
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromItemView(rm)
	}
	return out
}
