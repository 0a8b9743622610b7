package api

import (
	"context"

	"github.com/solatis/sieve/internal/core/auth"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ListFilters returns the tenant's stored filters in evaluation order.
// Served from the registry: it is the authoritative view of what can
// match, including filters flagged incompatible with the current schema.
func (s *FilterAPIService) ListFilters(ctx context.Context, req *pb.ListFiltersRequest) (*pb.ListFiltersResponse, error) {
	tenantID := auth.TenantIDFromContext(ctx)
	if tenantID == "" {
		return nil, status.Error(codes.Internal, "missing tenant_id in context")
	}

	entries := s.registry.Tenant(tenantID)
	filters := make([]*pb.Filter, len(entries))
	for i, e := range entries {
		filters[i] = &pb.Filter{
			FilterId:         string(e.ID),
			Name:             e.Name,
			Expression:       e.Expression,
			Action:           actionToProto(e.Action),
			Enabled:          e.Enabled,
			SchemaCompatible: e.Compiled != nil,
			CreatedAt:        timestamppb.New(e.CreatedAt),
		}
	}

	return &pb.ListFiltersResponse{Filters: filters}, nil
}
