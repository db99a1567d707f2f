package queries

import (
	"context"
	"time"

	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/infra"

	"github.com/google/uuid"
)

// Barbers see their active work unless they ask for other statuses.
var DefaultBarberStatuses = []string{
	servicerequest.StatusAccepted.String(),
	servicerequest.StatusOnRoute.String(),
}

type ServiceRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceRequestView, error)
	ListOpenFirstPage(ctx context.Context, limit int32) ([]*ServiceRequestView, error)
	ListOpenKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ServiceRequestView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ServiceRequestView, error)
	ListAssignedToBarber(ctx context.Context, barberID uuid.UUID, statuses []string) ([]*ServiceRequestView, error)
}

// ListFilter narrows ListMine. ClientID and BarberID are honoured for admins only.
type ListFilter struct {
	ClientID *uuid.UUID
	BarberID *uuid.UUID
	Statuses []string
}

type ServiceRequestQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ServiceRequestView, error)
	ListOpen(ctx context.Context, cursor *Cursor, limit int) ([]*ServiceRequestView, *Cursor, error)
	ListMine(ctx context.Context, actor user.Actor, filter ListFilter) ([]*ServiceRequestView, error)
}

type serviceRequestQueriesImpl struct {
	repo ServiceRequestReadStore
}

func NewServiceRequestQueries(repo ServiceRequestReadStore) ServiceRequestQueries {
	return &serviceRequestQueriesImpl{repo: repo}
}

func (q *serviceRequestQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ServiceRequestView, error) {
	view, err := findServiceRequest(ctx, q.repo, id)
	if err != nil {
		return nil, err
	}
	if !CanView(actor, view) {
		return nil, ErrServiceRequestAccess
	}
	return view, nil
}

func findServiceRequest(ctx context.Context, repo ServiceRequestReadStore, id uuid.UUID) (*ServiceRequestView, error) {
	view, err := repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

// CanView reports whether actor may read the request: its client, its
// assigned barber, any barber while it is open, or an admin.
func CanView(actor user.Actor, view *ServiceRequestView) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleClient:
		return view.ClientID == actor.ID
	case user.RoleBarber:
		if view.Status == servicerequest.StatusOpen.String() {
			return true
		}
		return view.AssignedBarberID != nil && *view.AssignedBarberID == actor.ID
	default:
		return false
	}
}

func (q *serviceRequestQueriesImpl) ListOpen(ctx context.Context, cursor *Cursor, limit int) ([]*ServiceRequestView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ServiceRequestView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListOpenFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListOpenKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *serviceRequestQueriesImpl) ListMine(ctx context.Context, actor user.Actor, filter ListFilter) ([]*ServiceRequestView, error) {
	switch actor.Role {
	case user.RoleClient:
		return q.repo.ListByClient(ctx, actor.ID)
	case user.RoleBarber:
		return q.listAssigned(ctx, actor.ID, filter.Statuses)
	case user.RoleAdmin:
		switch {
		case filter.ClientID != nil:
			return q.repo.ListByClient(ctx, *filter.ClientID)
		case filter.BarberID != nil:
			return q.listAssigned(ctx, *filter.BarberID, filter.Statuses)
		default:
			return nil, ErrListScopeRequired
		}
	default:
		return nil, ErrRoleNotAllowed
	}
}

func (q *serviceRequestQueriesImpl) listAssigned(ctx context.Context, barberID uuid.UUID, statuses []string) ([]*ServiceRequestView, error) {
	if len(statuses) == 0 {
		statuses = DefaultBarberStatuses
	}
	parsed, err := servicerequest.ParseStatuses(statuses)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(parsed))
	for i, s := range parsed {
		values[i] = s.String()
	}
	return q.repo.ListAssignedToBarber(ctx, barberID, values)
}
