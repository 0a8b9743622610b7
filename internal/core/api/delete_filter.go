package api

import (
	"context"
	"fmt"

	"github.com/solatis/sieve/internal/core/auth"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
	"github.com/solatis/sieve/internal/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DeleteFilter removes a stored filter from the database and the
// registry. The database row is deleted first: losing the registry entry
// for a row that still exists would resurrect the filter on restart.
func (s *FilterAPIService) DeleteFilter(ctx context.Context, req *pb.DeleteFilterRequest) (*pb.DeleteFilterResponse, error) {
	tenantID := auth.TenantIDFromContext(ctx)
	if tenantID == "" {
		return nil, status.Error(codes.Internal, "missing tenant_id in context")
	}

	filterID, err := types.ParseFilterID(req.FilterId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid filter_id: %v", err))
	}

	result, err := s.queries.Exec(ctx, "delete-filter", string(filterID), tenantID)
	if err != nil {
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("failed to delete filter: %v", err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("failed to delete filter: %v", err))
	}
	if affected == 0 {
		return nil, status.Error(codes.NotFound, types.ErrFilterNotFound.Error())
	}

	s.registry.Remove(tenantID, filterID)
	s.log.Info("filter deleted", "tenant_id", tenantID, "filter_id", filterID)

	return &pb.DeleteFilterResponse{}, nil
}
