package commands

import (
	"context"

	"itemshare/internal/domain/request"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type RequestCommands interface {
	Create(ctx context.Context, description string, requestorID uuid.UUID) (*CreateRequestResult, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, description string, requestorID uuid.UUID) (*CreateRequestResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requestor, err := tx.Reads().UserByID(ctx, requestorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id = %s not found", requestorID), ErrUserNotFound)
			}
			return err
		}

		r, err := request.NewItemRequest(description, requestor.ID, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Requests().Create(ctx, r); err != nil {
			return err
		}

		createdID = r.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateRequestResult{RequestID: createdID}, nil
}
