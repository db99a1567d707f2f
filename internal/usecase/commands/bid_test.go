//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	"styleapp-backend/internal/domain/negotiation"
	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/usecase/commands"
	"styleapp-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBidCommands_Submit(t *testing.T) {
	barberActor := user.NewActor(uuid.New(), user.RoleBarber)
	openReq := builder.NewServiceRequestBuilder().BuildDomain()
	in := commands.SubmitBidInput{ServiceRequestID: openReq.ID(), Amount: 48000}

	t.Run("creates pending bid under share lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), openReq.ID()).Return(openReq, nil).Times(1)
		f.reads.EXPECT().BarberByID(gomock.Any(), barberActor.ID).Return(nil, nil).Times(1)
		f.reads.EXPECT().HasPendingBid(gomock.Any(), openReq.ID(), barberActor.ID).Return(false, nil).Times(1)
		f.bids.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *bid.Bid) (*bid.Bid, error) {
				assert.Equal(t, bid.StatusPending, b.Status())
				assert.Equal(t, int64(48000), b.Amount())
				assert.Equal(t, barberActor.ID, b.BarberID())
				return b, nil
			}).Times(1)
		f.expectEvents(commands.EventBidCreated)

		view, err := commands.NewBidCommands(f.uow, f.clock).Submit(context.Background(), barberActor, in)

		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, openReq.ID(), view.ServiceRequestID)
	})

	t.Run("guards", func(t *testing.T) {
		accepted := builder.NewServiceRequestBuilder().Accepted(uuid.New(), 45000).BuildDomain()
		tests := []struct {
			name    string
			actor   user.Actor
			req     *servicerequest.ServiceRequest
			profile *barber.Profile
			amount  int64
			wantErr error
		}{
			{name: "client cannot bid", actor: user.NewActor(uuid.New(), user.RoleClient), req: openReq, amount: 100, wantErr: negotiation.ErrRoleNotAllowed},
			{name: "closed request", actor: barberActor, req: accepted, amount: 100, wantErr: negotiation.ErrRequestNotOpen},
			{name: "inactive barber", actor: barberActor, req: openReq, profile: barber.ReconstructProfile(barberActor.ID, "", false, fixedNow), amount: 100, wantErr: negotiation.ErrBarberInactive},
			{name: "zero amount", actor: barberActor, req: openReq, amount: 0, wantErr: bid.ErrAmountNotPositive},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				f := newTxFixture(ctrl)
				f.expectWithin()
				f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), tc.req.ID()).Return(tc.req, nil).Times(1)
				f.reads.EXPECT().BarberByID(gomock.Any(), gomock.Any()).Return(tc.profile, nil).MaxTimes(1)

				_, err := commands.NewBidCommands(f.uow, f.clock).
					Submit(context.Background(), tc.actor, commands.SubmitBidInput{ServiceRequestID: tc.req.ID(), Amount: tc.amount})
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("second pending bid from same barber is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), openReq.ID()).Return(openReq, nil).Times(1)
		f.reads.EXPECT().BarberByID(gomock.Any(), barberActor.ID).Return(nil, nil).Times(1)
		f.reads.EXPECT().HasPendingBid(gomock.Any(), openReq.ID(), barberActor.ID).Return(true, nil).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Submit(context.Background(), barberActor, in)
		assert.ErrorIs(t, err, commands.ErrDuplicatePendingBid)
	})

	t.Run("unique index race maps to duplicate pending bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		dup := infra.WrapRepoErr("insert bid", &pgconn.PgError{Code: "23505", ConstraintName: "bids_one_pending_per_barber"})
		f.expectWithin()
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), openReq.ID()).Return(openReq, nil).Times(1)
		f.reads.EXPECT().BarberByID(gomock.Any(), barberActor.ID).Return(nil, nil).Times(1)
		f.reads.EXPECT().HasPendingBid(gomock.Any(), openReq.ID(), barberActor.ID).Return(false, nil).Times(1)
		f.bids.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dup).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Submit(context.Background(), barberActor, in)
		assert.ErrorIs(t, err, commands.ErrDuplicatePendingBid)
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), gomock.Any()).Return(nil, notFound()).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Submit(context.Background(), barberActor, in)
		assert.ErrorIs(t, err, commands.ErrServiceRequestNotFound)
	})
}

func TestBidCommands_Accept(t *testing.T) {
	client := user.NewActor(uuid.New(), user.RoleClient)

	setup := func() (*servicerequest.ServiceRequest, *bid.Bid) {
		req := builder.NewServiceRequestBuilder().With(func(b *builder.ServiceRequestBuilder) {
			b.ClientID = client.ID
		}).BuildDomain()
		pending := builder.NewBidBuilder().With(func(b *builder.BidBuilder) {
			b.ServiceRequestID = req.ID()
		}).BuildDomain()
		return req, pending
	}

	t.Run("request moves first, then bid, then siblings are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		req, pending := setup()
		decided := fixedNow
		accepted := bid.ReconstructBid(pending.ID(), req.ID(), pending.BarberID(), pending.Amount(), bid.StatusAccepted, pending.CreatedAt(), &decided)
		loser := builder.NewBidBuilder().With(func(b *builder.BidBuilder) {
			b.ServiceRequestID = req.ID()
			b.Status = bid.StatusRejected
		}).BuildDomain()
		acceptedID := accepted.ID()
		updated := builder.NewServiceRequestBuilder().With(func(b *builder.ServiceRequestBuilder) {
			b.ID = req.ID()
			b.ClientID = client.ID
			b.AcceptedBidID = &acceptedID
		}).Accepted(pending.BarberID(), pending.Amount()).BuildDomain()

		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(pending, nil).Times(1)
		f.reads.EXPECT().ServiceRequestByID(gomock.Any(), req.ID()).Return(req, nil).Times(1)
		requestCAS := f.requests.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, tr servicerequest.Transition) (*servicerequest.ServiceRequest, error) {
				assert.Equal(t, pending.BarberID(), *tr.AssignedBarberID)
				assert.Equal(t, pending.ID(), *tr.AcceptedBidID)
				assert.Equal(t, pending.Amount(), *tr.AgreedPrice)
				return updated, nil
			}).Times(1)
		bidCAS := f.bids.EXPECT().Transition(gomock.Any(), gomock.Any(), pending.ID(), bid.StatusPending, bid.StatusAccepted, fixedNow).
			Return(accepted, nil).Times(1).After(requestCAS)
		pendingID := pending.ID()
		f.bids.EXPECT().RejectPending(gomock.Any(), gomock.Any(), req.ID(), &pendingID, fixedNow).
			Return([]*bid.Bid{loser}, nil).Times(1).After(bidCAS)
		f.expectEvents(commands.EventServiceRequestAccepted, commands.EventBidAccepted, commands.EventBidRejected)

		res, err := commands.NewBidCommands(f.uow, f.clock).Accept(context.Background(), client, pending.ID())

		require.NoError(t, err)
		assert.Equal(t, "accepted", res.Request.Status)
		assert.Equal(t, "accepted", res.Bid.Status)
		require.Len(t, res.RejectedBids, 1)
		assert.Equal(t, loser.ID(), res.RejectedBids[0].ID)
	})

	t.Run("losing the request race leaves bids untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		req, pending := setup()
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(pending, nil).Times(1)
		f.reads.EXPECT().ServiceRequestByID(gomock.Any(), req.ID()).Return(req, nil).Times(1)
		f.requests.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, casMiss()).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Accept(context.Background(), client, pending.ID())
		assert.ErrorIs(t, err, negotiation.ErrRequestNoLongerOpen)
	})

	t.Run("stale read of accepted request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		_, pending := setup()
		accepted := builder.NewServiceRequestBuilder().With(func(b *builder.ServiceRequestBuilder) {
			b.ID = pending.ServiceRequestID()
			b.ClientID = client.ID
		}).Accepted(uuid.New(), 45000).BuildDomain()
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(pending, nil).Times(1)
		f.reads.EXPECT().ServiceRequestByID(gomock.Any(), accepted.ID()).Return(accepted, nil).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Accept(context.Background(), client, pending.ID())
		assert.ErrorIs(t, err, negotiation.ErrRequestNoLongerOpen)
	})

	t.Run("only the owner may accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		req, pending := setup()
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(pending, nil).Times(1)
		f.reads.EXPECT().ServiceRequestByID(gomock.Any(), req.ID()).Return(req, nil).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Accept(context.Background(), user.NewActor(uuid.New(), user.RoleClient), pending.ID())
		assert.ErrorIs(t, err, negotiation.ErrNotRequestOwner)
	})

	t.Run("unknown bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), gomock.Any()).Return(nil, notFound()).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Accept(context.Background(), client, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBidNotFound)
	})
}

func TestBidCommands_Reject(t *testing.T) {
	client := user.NewActor(uuid.New(), user.RoleClient)
	req := builder.NewServiceRequestBuilder().With(func(b *builder.ServiceRequestBuilder) {
		b.ClientID = client.ID
	}).BuildDomain()
	pending := builder.NewBidBuilder().With(func(b *builder.BidBuilder) {
		b.ServiceRequestID = req.ID()
	}).BuildDomain()

	t.Run("rejects a single pending bid and leaves the request open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		decided := fixedNow
		rejected := bid.ReconstructBid(pending.ID(), req.ID(), pending.BarberID(), pending.Amount(), bid.StatusRejected, pending.CreatedAt(), &decided)
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(pending, nil).Times(1)
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), req.ID()).Return(req, nil).Times(1)
		f.bids.EXPECT().Transition(gomock.Any(), gomock.Any(), pending.ID(), bid.StatusPending, bid.StatusRejected, fixedNow).
			Return(rejected, nil).Times(1)
		f.expectEvents(commands.EventBidRejected)

		view, err := commands.NewBidCommands(f.uow, f.clock).Reject(context.Background(), client, pending.ID())

		require.NoError(t, err)
		assert.Equal(t, "rejected", view.Status)
		require.NotNil(t, view.DecidedAt)
		assert.True(t, view.DecidedAt.Equal(fixedNow))
	})

	t.Run("already decided bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		decided := fixedNow.Add(-time.Minute)
		done := bid.ReconstructBid(pending.ID(), req.ID(), pending.BarberID(), pending.Amount(), bid.StatusRejected, pending.CreatedAt(), &decided)
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(done, nil).Times(1)
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), req.ID()).Return(req, nil).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Reject(context.Background(), client, pending.ID())
		assert.ErrorIs(t, err, negotiation.ErrBidNotPending)
	})

	t.Run("concurrent decision is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newTxFixture(ctrl)
		f.expectWithin()
		f.reads.EXPECT().BidByID(gomock.Any(), pending.ID()).Return(pending, nil).Times(1)
		f.reads.EXPECT().ServiceRequestForShare(gomock.Any(), req.ID()).Return(req, nil).Times(1)
		f.bids.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("bid status changed", nil, infra.KindConflict)).Times(1)

		_, err := commands.NewBidCommands(f.uow, f.clock).Reject(context.Background(), client, pending.ID())
		assert.ErrorIs(t, err, commands.ErrConcurrentUpdate)
	})
}
