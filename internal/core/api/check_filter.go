package api

import (
	"context"
	"errors"

	"github.com/solatis/sieve/internal/filter"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
)

// CheckFilter validates an expression against the server's schema
// without storing anything. Parse failures are part of the response, not
// gRPC errors: an invalid expression is a valid answer to the question.
func (s *FilterAPIService) CheckFilter(ctx context.Context, req *pb.CheckFilterRequest) (*pb.CheckFilterResponse, error) {
	_, err := s.scheme.Parse(req.Expression)
	if err == nil {
		return &pb.CheckFilterResponse{Valid: true}, nil
	}

	var parseErr *filter.ParseError
	if errors.As(err, &parseErr) {
		return &pb.CheckFilterResponse{
			Valid:        false,
			ErrorMessage: parseErr.Msg,
			ErrorOffset:  int32(parseErr.Pos),
			ErrorLength:  int32(parseErr.Len),
		}, nil
	}
	return &pb.CheckFilterResponse{
		Valid:        false,
		ErrorMessage: err.Error(),
	}, nil
}
