package queries

import (
	"context"
	"strings"
	"time"

	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *uuid.UUID    `json:"requestId,omitempty"`
	LastBooking *time.Time    `json:"lastBooking,omitempty"`
	NextBooking *time.Time    `json:"nextBooking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	// FindByOwner decorates each item with the start of its most recent
	// non-future booking and its nearest future booking relative to now.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
	users UserReadStore
	clock clock.Clock
}

func NewItemQueries(store ItemReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{store: store, users: users, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("item with id = %s not found", id), ErrItemNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error) {
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("user with id = %s not found", ownerID), ErrUserNotFound)
		}
		return nil, err
	}
	return q.store.FindByOwner(ctx, ownerID, q.clock.Now())
}

// Search returns available items matching the text; a blank query is an
// empty result without touching the store.
func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.store.Search(ctx, text)
}
