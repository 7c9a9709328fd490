package readstore

import (
	"context"

	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
	"itemshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`

	var view queries.UserView
	if err := r.db.QueryRow(ctx, q, id).Scan(&view.ID, &view.Name, &view.Email); err != nil {
		return nil, infra.WrapRepoErr("failed to get user view by id", err)
	}
	return &view, nil
}
