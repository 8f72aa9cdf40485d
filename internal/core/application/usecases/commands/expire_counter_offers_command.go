package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrExpireCounterOffersCommandIsNotConstructed = errors.New(
	"ExpireCounterOffersCommand must be created via NewExpireCounterOffersCommand constructor",
)

// ExpireCounterOffersCommand sweeps orders holding an open counter-offer
// past its advisory deadline. Run by the background poller, never by a
// user-facing request.
type ExpireCounterOffersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireCounterOffersCommand creates a sweep command for the given
// instant.
func NewExpireCounterOffersCommand(now time.Time) (ExpireCounterOffersCommand, error) {
	if now.IsZero() {
		return ExpireCounterOffersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return ExpireCounterOffersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireCounterOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireCounterOffersCommandIsNotConstructed)
}

// Now returns the sweep instant.
func (c ExpireCounterOffersCommand) Now() time.Time {
	return c.now
}

// ExpireCounterOffersCommandHandler clears expired negotiation proposals.
// Each affected order gets a system event recording the expiry; the order
// itself stays Pending.
type ExpireCounterOffersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireCounterOffersCommandHandler creates a handler for the expiry sweep.
func NewExpireCounterOffersCommandHandler(uowFactory OrderUoWFactory) ExpireCounterOffersCommandHandler {
	return ExpireCounterOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle clears every expired open proposal and returns how many orders
// were touched. A failing order is skipped rather than aborting the
// sweep: one persistently conflicting order must not block expiry of the
// rest. Skipped failures are reported joined alongside the count.
func (h *ExpireCounterOffersCommandHandler) Handle(ctx context.Context, cmd ExpireCounterOffersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregates, err := orderRepo.GetWithExpiredCounterOffers(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	expired := 0
	var sweepErrs []error
	for _, aggregate := range aggregates {
		if err = aggregate.ExpireCounterOffer(cmd.Now()); err != nil {
			sweepErrs = append(sweepErrs, err)
			continue
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			sweepErrs = append(sweepErrs, err)
			continue
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, errors.Join(sweepErrs...)
}
