package repository

import (
	"context"

	"styleapp-backend/internal/domain/servicerequest"
	"styleapp-backend/internal/infra"
	"styleapp-backend/internal/infra/repository/converter"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
)

type ServiceRequestWriteQueries interface {
	CreateServiceRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceRequestParams) (sqlc.ServiceRequests, error)
	TransitionServiceRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionServiceRequestParams) (sqlc.ServiceRequests, error)
}

type ServiceRequestRepository struct {
	queries ServiceRequestWriteQueries
}

func NewServiceRequestRepository(queries ServiceRequestWriteQueries) *ServiceRequestRepository {
	return &ServiceRequestRepository{queries: queries}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *servicerequest.ServiceRequest) (*servicerequest.ServiceRequest, error) {
	row, err := r.queries.CreateServiceRequest(ctx, tx, converter.ServiceRequestToCreateParams(req))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create service request", err)
	}
	return converter.ServiceRequestFromRow(row), nil
}

// Transition applies t only while the stored status still equals t.From.
// A lost race surfaces as KindConflict.
func (r *ServiceRequestRepository) Transition(ctx context.Context, tx sqlc.DBTX, t servicerequest.Transition) (*servicerequest.ServiceRequest, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	row, err := r.queries.TransitionServiceRequest(ctx, tx, converter.TransitionToParams(t))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request status changed concurrently", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to transition service request", err)
	}
	return converter.ServiceRequestFromRow(row), nil
}
