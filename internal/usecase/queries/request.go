package queries

import (
	"context"
	"time"

	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestView struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	RequestorID uuid.UUID         `json:"requestorId"`
	Created     time.Time         `json:"created"`
	Items       []RequestItemView `json:"items"`
}

// RequestItemView is an item listed in answer to a request.
type RequestItemView struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	Name    string    `json:"name"`
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
	FindAllExcept(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
	users UserReadStore
}

func NewRequestQueries(store RequestReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{store: store, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*RequestView, error) {
	if err := q.ensureUser(ctx, actorID); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("request with id = %s not found", id), ErrRequestNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := q.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return q.store.FindByRequestor(ctx, userID)
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	if err := q.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return q.store.FindAllExcept(ctx, userID)
}

func (q *requestQueriesImpl) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(errs.Newf("user with id = %s not found", userID), ErrUserNotFound)
		}
		return err
	}
	return nil
}
