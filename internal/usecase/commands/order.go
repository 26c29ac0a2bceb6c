package commands

import (
	"context"
	"errors"

	"roomcart/internal/domain/order"
	"roomcart/internal/infra"
	"roomcart/internal/pkg/errs"
	"roomcart/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrInvalidTransition = errs.New("invalid order status transition")
)

type OrderCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type orderUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewOrderUseCase(uow shared.UnitOfWork) OrderCommands {
	return &orderUseCaseImpl{uow: uow}
}

// UpdateStatus applies one lifecycle transition. The current status is read
// under a row lock inside the same transaction as the update, so concurrent
// transitions serialize instead of racing.
func (c *orderUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := order.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Orders().FindStatusForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !current.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		return tx.Orders().UpdateStatus(ctx, id, next)
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return ErrInvalidTransition
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
