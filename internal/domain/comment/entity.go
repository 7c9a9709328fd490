package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyText = errors.New("comment text must not be empty")

type Comment struct {
	id       uuid.UUID
	text     string
	authorID uuid.UUID
	itemID   uuid.UUID
	created  time.Time
}

// NewComment assigns the created timestamp from the caller's clock
// snapshot; the gate deciding whether the author may comment at all lives
// in the usecase.
func NewComment(text string, itemID, authorID uuid.UUID, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	return &Comment{
		id:       uuid.New(),
		text:     text,
		authorID: authorID,
		itemID:   itemID,
		created:  now,
	}, nil
}

func ReconstructComment(id uuid.UUID, text string, itemID, authorID uuid.UUID, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		authorID: authorID,
		itemID:   itemID,
		created:  created,
	}
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) Created() time.Time  { return c.created }
