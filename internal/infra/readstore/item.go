package readstore

import (
	"context"
	"time"

	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE id = $1`

	var view queries.ItemView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available, &view.RequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get item view by id", err)
	}

	comments, err := r.loadComments(ctx, []uuid.UUID{view.ID})
	if err != nil {
		return nil, err
	}
	view.Comments = comments[view.ID]
	if view.Comments == nil {
		view.Comments = []queries.CommentView{}
	}
	return &view, nil
}

// FindByOwner decorates each item with the start of its latest started
// booking and its nearest upcoming one, both relative to now.
func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*queries.ItemView, error) {
	const q = `
		SELECT i.id, i.owner_id, i.name, i.description, i.available, i.request_id,
			(SELECT max(b.start_ts) FROM bookings b WHERE b.item_id = i.id AND b.start_ts <= $2) AS last_booking,
			(SELECT min(b.start_ts) FROM bookings b WHERE b.item_id = i.id AND b.start_ts > $2) AS next_booking
		FROM items i
		WHERE i.owner_id = $1
		ORDER BY i.name`

	rows, err := r.db.Query(ctx, q, ownerID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var view queries.ItemView
		err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available, &view.RequestID,
			&view.LastBooking, &view.NextBooking)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err, infra.KindDBFailure)
		}
		view.Comments = []queries.CommentView{}
		views = append(views, &view)
		ids = append(ids, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err, infra.KindDBFailure)
	}

	if len(ids) == 0 {
		return views, nil
	}

	comments, err := r.loadComments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if cs, ok := comments[view.ID]; ok {
			view.Comments = cs
		}
	}
	return views, nil
}

// Search matches available items by case-insensitive substring over name
// and description.
func (r *ItemReadStore) Search(ctx context.Context, text string) ([]*queries.ItemView, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE available AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		var view queries.ItemView
		err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Name, &view.Description, &view.Available, &view.RequestID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err, infra.KindDBFailure)
		}
		view.Comments = []queries.CommentView{}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err, infra.KindDBFailure)
	}
	return views, nil
}

func (r *ItemReadStore) loadComments(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]queries.CommentView, error) {
	const q = `
		SELECT c.item_id, c.id, c.comment_text, u.name, c.created
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created`

	rows, err := r.db.Query(ctx, q, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load item comments", err)
	}
	defer rows.Close()

	byItem := make(map[uuid.UUID][]queries.CommentView)
	for rows.Next() {
		var itemID uuid.UUID
		var view queries.CommentView
		if err := rows.Scan(&itemID, &view.ID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err, infra.KindDBFailure)
		}
		byItem[itemID] = append(byItem[itemID], view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err, infra.KindDBFailure)
	}
	return byItem, nil
}
