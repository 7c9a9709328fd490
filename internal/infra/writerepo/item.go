package writerepo

import (
	"context"

	"itemshare/internal/domain/item"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	const q = `
		INSERT INTO items (id, owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q, it.ID(), it.OwnerID(), it.Name(), it.Description(), it.Available(), it.RequestID())
	if err != nil {
		return infra.WrapRepoErr("failed to insert item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	const q = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, it.ID(), it.Name(), it.Description(), it.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
