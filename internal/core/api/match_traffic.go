package api

import (
	"context"
	"errors"

	"github.com/solatis/sieve/internal/core/auth"
	"github.com/solatis/sieve/internal/filter"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MatchTraffic runs every enabled filter against the supplied field
// values, in registry order, and reports all matches. The verdict is the
// action of the first match, allow when nothing matches.
//
// A filter whose evaluation hits a missing field value is skipped, not
// fatal: one filter referencing an unpopulated field must not take down
// matching for the whole request. The compiled forms are shared and
// immutable, so concurrent MatchTraffic calls need no locking beyond the
// registry snapshot.
func (s *FilterAPIService) MatchTraffic(ctx context.Context, req *pb.MatchTrafficRequest) (*pb.MatchTrafficResponse, error) {
	tenantID := auth.TenantIDFromContext(ctx)
	if tenantID == "" {
		return nil, status.Error(codes.Internal, "missing tenant_id in context")
	}

	ectx, err := DecodeValues(s.scheme, req.ValuesJson)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var matches []*pb.FilterMatch
	verdict := pb.Action_ACTION_ALLOW
	for _, entry := range s.registry.Tenant(tenantID) {
		if !entry.Enabled || entry.Compiled == nil {
			continue
		}

		match, err := entry.Compiled.Execute(ectx)
		if err != nil {
			var missing *filter.MissingValueError
			if errors.As(err, &missing) {
				s.log.Debug("skipping filter with missing field value",
					"tenant_id", tenantID, "filter_id", entry.ID, "field", missing.Field)
				continue
			}
			return nil, status.Error(codes.Internal, err.Error())
		}
		if !match {
			continue
		}

		if len(matches) == 0 {
			verdict = actionToProto(entry.Action)
		}
		matches = append(matches, &pb.FilterMatch{
			FilterId: string(entry.ID),
			Name:     entry.Name,
			Action:   actionToProto(entry.Action),
		})
	}

	return &pb.MatchTrafficResponse{Matches: matches, Verdict: verdict}, nil
}
