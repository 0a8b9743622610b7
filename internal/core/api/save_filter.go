package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/solatis/sieve/internal/core/auth"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
	"github.com/solatis/sieve/internal/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SaveFilter validates, compiles and persists a filter, then publishes
// the compiled form to the registry. The stored expression is the
// parser's canonical form, so re-loading it always parses.
func (s *FilterAPIService) SaveFilter(ctx context.Context, req *pb.SaveFilterRequest) (*pb.SaveFilterResponse, error) {
	tenantID := auth.TenantIDFromContext(ctx)
	if tenantID == "" {
		return nil, status.Error(codes.Internal, "missing tenant_id in context")
	}

	if req.Name == "" || len(req.Name) > types.MaxFilterNameLength {
		return nil, status.Error(codes.InvalidArgument, types.ErrFilterNameInvalid.Error())
	}
	action, err := actionFromProto(req.Action)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ast, err := s.scheme.Parse(req.Expression)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var count int
	if err := s.queries.Get(ctx, "count-filters", &count, tenantID); err != nil {
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("failed to count filters: %v", err))
	}
	if count >= types.MaxStoredFilters {
		return nil, status.Error(codes.ResourceExhausted, types.ErrTooManyFilters.Error())
	}

	// Name uniqueness is also enforced by the unique index; this check
	// exists to return a clean ALREADY_EXISTS instead of a driver error.
	var existingID string
	err = s.queries.Get(ctx, "get-filter-by-name", &existingID, tenantID, req.Name)
	if err == nil {
		return nil, status.Error(codes.AlreadyExists, types.ErrFilterNameTaken.Error())
	}
	if err != sql.ErrNoRows {
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("failed to check filter name: %v", err))
	}

	stored := types.StoredFilter{
		ID:                types.NewFilterID(),
		TenantID:          tenantID,
		Name:              req.Name,
		Expression:        ast.String(),
		Action:            action,
		Enabled:           req.Enabled,
		SchemaFingerprint: s.fingerprint,
		CreatedAt:         time.Now().UTC().Truncate(time.Second),
	}

	_, err = s.queries.Exec(ctx, "insert-filter",
		string(stored.ID),
		stored.TenantID,
		stored.Name,
		stored.Expression,
		string(stored.Action),
		stored.Enabled,
		stored.SchemaFingerprint,
		stored.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("failed to store filter: %v", err))
	}

	s.registry.Put(stored, ast.Compile())
	s.log.Info("filter saved",
		"tenant_id", tenantID, "filter_id", stored.ID, "name", stored.Name, "action", stored.Action)

	return &pb.SaveFilterResponse{FilterId: string(stored.ID)}, nil
}
