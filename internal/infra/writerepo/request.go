package writerepo

import (
	"context"

	"itemshare/internal/domain/request"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ItemRequest) error {
	const q = `
		INSERT INTO requests (id, description, requestor_id, created)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, req.ID(), req.Description(), req.RequestorID(), req.Created())
	if err != nil {
		return infra.WrapRepoErr("failed to insert item request", err)
	}
	return nil
}
