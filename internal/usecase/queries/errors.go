package queries

import "styleapp-backend/internal/pkg/errs"

var (
	ErrServiceRequestNotFound = errs.Mark(errs.New("service request not found"), errs.ErrNotFound)
	ErrServiceRequestAccess   = errs.Mark(errs.New("service request access denied"), errs.ErrAuthorization)
	ErrBidAccess              = errs.Mark(errs.New("bid access denied"), errs.ErrAuthorization)
	ErrRoleNotAllowed         = errs.Mark(errs.New("role is not allowed to read this resource"), errs.ErrAuthorization)
	ErrInvalidCursor          = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrListScopeRequired      = errs.Mark(errs.New("client_id or barber_id is required"), errs.ErrValidation)
	ErrInvalidReportRange     = errs.Mark(errs.New("report range start must be before its end"), errs.ErrValidation)
)
