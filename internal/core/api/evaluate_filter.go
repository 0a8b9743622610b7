package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/solatis/sieve/internal/core/auth"
	"github.com/solatis/sieve/internal/filter"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
	"github.com/solatis/sieve/internal/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EvaluateFilter runs one stored filter against the supplied field
// values. Unlike MatchTraffic, a missing field value is an error here:
// the caller asked about this specific filter, so a silent skip would
// hide the misconfiguration.
func (s *FilterAPIService) EvaluateFilter(ctx context.Context, req *pb.EvaluateFilterRequest) (*pb.EvaluateFilterResponse, error) {
	tenantID := auth.TenantIDFromContext(ctx)
	if tenantID == "" {
		return nil, status.Error(codes.Internal, "missing tenant_id in context")
	}

	filterID, err := types.ParseFilterID(req.FilterId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid filter_id: %v", err))
	}

	entry, ok := s.registry.Get(tenantID, filterID)
	if !ok {
		return nil, status.Error(codes.NotFound, types.ErrFilterNotFound.Error())
	}
	if entry.Compiled == nil {
		return nil, status.Error(codes.FailedPrecondition, types.ErrSchemaIncompatible.Error())
	}

	ectx, err := DecodeValues(s.scheme, req.ValuesJson)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	match, err := entry.Compiled.Execute(ectx)
	if err != nil {
		var missing *filter.MissingValueError
		if errors.As(err, &missing) {
			return nil, status.Error(codes.FailedPrecondition, missing.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.EvaluateFilterResponse{Match: match}, nil
}
