package readstore

import (
	"context"

	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const q = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE id = $1`

	var view queries.RequestView
	err := r.db.QueryRow(ctx, q, id).Scan(&view.ID, &view.Description, &view.RequestorID, &view.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get request view by id", err)
	}

	answers, err := r.loadAnswers(ctx, []uuid.UUID{view.ID})
	if err != nil {
		return nil, err
	}
	view.Items = answers[view.ID]
	if view.Items == nil {
		view.Items = []queries.RequestItemView{}
	}
	return &view, nil
}

func (r *RequestReadStore) FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*queries.RequestView, error) {
	const q = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created DESC`
	return r.list(ctx, q, requestorID)
}

// FindAllExcept lists requests placed by everyone but the given user,
// newest first.
func (r *RequestReadStore) FindAllExcept(ctx context.Context, requestorID uuid.UUID) ([]*queries.RequestView, error) {
	const q = `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created DESC`
	return r.list(ctx, q, requestorID)
}

func (r *RequestReadStore) list(ctx context.Context, query string, arg any) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	views := make([]*queries.RequestView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var view queries.RequestView
		if err := rows.Scan(&view.ID, &view.Description, &view.RequestorID, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err, infra.KindDBFailure)
		}
		view.Items = []queries.RequestItemView{}
		views = append(views, &view)
		ids = append(ids, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err, infra.KindDBFailure)
	}

	if len(ids) == 0 {
		return views, nil
	}

	answers, err := r.loadAnswers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if items, ok := answers[view.ID]; ok {
			view.Items = items
		}
	}
	return views, nil
}

// loadAnswers collects the items listed in answer to each request.
func (r *RequestReadStore) loadAnswers(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]queries.RequestItemView, error) {
	const q = `
		SELECT request_id, id, owner_id, name
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load request answers", err)
	}
	defer rows.Close()

	byRequest := make(map[uuid.UUID][]queries.RequestItemView)
	for rows.Next() {
		var requestID uuid.UUID
		var view queries.RequestItemView
		if err := rows.Scan(&requestID, &view.ID, &view.OwnerID, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan answer row", err, infra.KindDBFailure)
		}
		byRequest[requestID] = append(byRequest[requestID], view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read answer rows", err, infra.KindDBFailure)
	}
	return byRequest, nil
}
