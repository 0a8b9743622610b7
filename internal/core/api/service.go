// Package api provides the gRPC service implementation for the sieve
// filter API.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/solatis/sieve/internal/core/config"
	"github.com/solatis/sieve/internal/core/db"
	"github.com/solatis/sieve/internal/filter"
	pb "github.com/solatis/sieve/internal/protobuf/sieve/filter/v1"
	"github.com/solatis/sieve/internal/types"
)

// FilterAPIService implements the gRPC FilterAPIServer interface.
// Thin orchestration layer: the engine lives in internal/filter, storage
// in the database, and the compiled forms in the in-memory registry.
type FilterAPIService struct {
	pb.UnimplementedFilterAPIServer
	db          *sqlx.DB
	queries     *db.Queries
	cfg         *config.FilterAPIConfig
	scheme      *filter.Scheme
	fingerprint string
	registry    *Registry
	log         *slog.Logger
}

// NewFilterAPIService creates a service instance with dependencies.
// Builds the scheme from the configured field declarations and loads
// every stored filter into the registry, compiling the ones saved
// against the current schema.
func NewFilterAPIService(ctx context.Context, database *sqlx.DB, queries *db.Queries, cfg *config.FilterAPIConfig, log *slog.Logger) (*FilterAPIService, error) {
	if database == nil {
		return nil, fmt.Errorf("database cannot be nil")
	}
	if queries == nil {
		return nil, fmt.Errorf("queries cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("cfg cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	scheme, err := BuildScheme(cfg.SchemaFields)
	if err != nil {
		return nil, fmt.Errorf("invalid schema configuration: %w", err)
	}
	if scheme.FieldCount() == 0 {
		return nil, fmt.Errorf("schema.fields must declare at least one field")
	}

	s := &FilterAPIService{
		db:          database,
		queries:     queries,
		cfg:         cfg,
		scheme:      scheme,
		fingerprint: SchemaFingerprint(scheme),
		registry:    NewRegistry(),
		log:         log,
	}

	if err := s.loadFilters(ctx); err != nil {
		return nil, fmt.Errorf("failed to load stored filters: %w", err)
	}

	return s, nil
}

// Scheme returns the scheme the service parses and evaluates against.
func (s *FilterAPIService) Scheme() *filter.Scheme { return s.scheme }

// filterRow is the filters table row as scanned from the database.
// created_at is scanned as text: SQLite stores RFC3339 strings and
// database/sql renders PostgreSQL timestamps as strings on request.
type filterRow struct {
	FilterID          string `db:"filter_id"`
	TenantID          string `db:"tenant_id"`
	Name              string `db:"name"`
	Expression        string `db:"expression"`
	Action            string `db:"action"`
	Enabled           bool   `db:"enabled"`
	SchemaFingerprint string `db:"schema_fingerprint"`
	CreatedAt         string `db:"created_at"`
}

// toStored converts a database row to the domain representation.
func (r *filterRow) toStored() (types.StoredFilter, error) {
	action, err := types.ParseAction(r.Action)
	if err != nil {
		return types.StoredFilter{}, fmt.Errorf("filter %s: %w", r.FilterID, err)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return types.StoredFilter{}, fmt.Errorf("filter %s: bad created_at: %w", r.FilterID, err)
	}
	return types.StoredFilter{
		ID:                types.FilterID(r.FilterID),
		TenantID:          r.TenantID,
		Name:              r.Name,
		Expression:        r.Expression,
		Action:            action,
		Enabled:           r.Enabled,
		SchemaFingerprint: r.SchemaFingerprint,
		CreatedAt:         createdAt,
	}, nil
}

// loadFilters populates the registry from the filters table. Filters
// saved against a different schema stay in the registry uncompiled so
// ListFilters can report them, but they never match traffic.
func (s *FilterAPIService) loadFilters(ctx context.Context) error {
	var rows []filterRow
	if err := s.queries.Select(ctx, "list-all-filters", &rows); err != nil {
		return err
	}

	loaded, skipped := 0, 0
	for i := range rows {
		stored, err := rows[i].toStored()
		if err != nil {
			s.log.Warn("skipping malformed stored filter", "error", err)
			skipped++
			continue
		}

		compiled := s.compileStored(&stored)
		if compiled == nil {
			skipped++
		} else {
			loaded++
		}
		s.registry.Put(stored, compiled)
	}

	s.log.Info("filter registry loaded", "compiled", loaded, "incompatible", skipped)
	return nil
}

// compileStored compiles a stored filter against the current scheme, or
// returns nil when the filter cannot run: saved against a different
// schema fingerprint, or no longer parseable.
func (s *FilterAPIService) compileStored(stored *types.StoredFilter) *filter.Filter {
	if !stored.CompatibleWith(s.fingerprint) {
		s.log.Warn("stored filter has incompatible schema fingerprint",
			"filter_id", stored.ID, "name", stored.Name)
		return nil
	}
	ast, err := s.scheme.Parse(stored.Expression)
	if err != nil {
		s.log.Warn("stored filter no longer parses",
			"filter_id", stored.ID, "name", stored.Name, "error", err)
		return nil
	}
	return ast.Compile()
}

// actionToProto maps the domain action to the proto enum.
func actionToProto(a types.Action) pb.Action {
	switch a {
	case types.ActionAllow:
		return pb.Action_ACTION_ALLOW
	case types.ActionBlock:
		return pb.Action_ACTION_BLOCK
	case types.ActionLog:
		return pb.Action_ACTION_LOG
	default:
		return pb.Action_ACTION_UNSPECIFIED
	}
}

// actionFromProto maps the proto enum to the domain action.
func actionFromProto(a pb.Action) (types.Action, error) {
	switch a {
	case pb.Action_ACTION_ALLOW:
		return types.ActionAllow, nil
	case pb.Action_ACTION_BLOCK:
		return types.ActionBlock, nil
	case pb.Action_ACTION_LOG:
		return types.ActionLog, nil
	default:
		return "", types.ErrInvalidAction
	}
}
