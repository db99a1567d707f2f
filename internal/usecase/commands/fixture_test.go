//go:build unit

package commands_test

import (
	"context"
	"time"

	"styleapp-backend/internal/infra"
	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/usecase/shared"
	sharedmock "styleapp-backend/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)

// txFixture wires a unit of work whose Within runs the callback against
// mocked repositories.
type txFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	requests      *sharedmock.MockServiceRequestRepository
	bids          *sharedmock.MockBidRepository
	barbers       *sharedmock.MockBarberRepository
	ledger        *sharedmock.MockLedgerRepository
	notifications *sharedmock.MockNotificationRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	clock         *clock.MockClock
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		requests:      sharedmock.NewMockServiceRequestRepository(ctrl),
		bids:          sharedmock.NewMockBidRepository(ctrl),
		barbers:       sharedmock.NewMockBarberRepository(ctrl),
		ledger:        sharedmock.NewMockLedgerRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().ServiceRequests().Return(f.requests).AnyTimes()
	f.tx.EXPECT().Bids().Return(f.bids).AnyTimes()
	f.tx.EXPECT().Barbers().Return(f.barbers).AnyTimes()
	f.tx.EXPECT().Ledger().Return(f.ledger).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

func (f *txFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).Times(1)
}

// expectEvents requires exactly the given outbox event types, in order.
func (f *txFixture) expectEvents(eventTypes ...string) {
	var prev *gomock.Call
	for _, et := range eventTypes {
		call := f.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), et, gomock.Any(), gomock.Any(), fixedNow).
			Return(nil).Times(1)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}
}

func casMiss() error {
	return infra.WrapRepoErr("service request status changed", nil, infra.KindConflict)
}

func notFound() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}
