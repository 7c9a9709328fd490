package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description must not be empty")

// ItemRequest is a user's ask for an item nobody has listed yet. Items
// created in answer reference the request id.
type ItemRequest struct {
	id          uuid.UUID
	description string
	requestorID uuid.UUID
	created     time.Time
}

func NewItemRequest(description string, requestorID uuid.UUID, now time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		description: description,
		requestorID: requestorID,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id uuid.UUID, description string, requestorID uuid.UUID, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) RequestorID() uuid.UUID { return r.requestorID }
func (r *ItemRequest) Created() time.Time     { return r.created }
