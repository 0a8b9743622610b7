// Package auth provides HMAC-based API key authentication for gRPC services.
package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// contextKey is a typed key for context values to avoid collisions.
type contextKey string

// identityKey is the context key for storing the authenticated identity.
const identityKey = contextKey("identity")

// Key scopes. Admin keys may mutate stored filters; evaluate keys may
// only check and evaluate. Admin implies evaluate.
const (
	ScopeEvaluate = "evaluate"
	ScopeAdmin    = "admin"
)

// Identity is the authenticated caller: the tenant the key belongs to
// and the scope the key grants.
type Identity struct {
	TenantID string
	Scope    string
}

// Queries interface defines database operations needed for authentication.
// Implemented by *db.Queries to allow query loading via LoadQueries().
type Queries interface {
	Get(ctx context.Context, name string, dest interface{}, args ...interface{}) error
	Exec(ctx context.Context, name string, args ...interface{}) (sql.Result, error)
}

// Authenticator validates API keys using HMAC-SHA256 signatures.
// Holds in-memory secret map for O(1) lookup and queries for key verification.
type Authenticator struct {
	secrets map[string][]byte
	queries Queries
}

// NewAuthenticator creates an authenticator with HMAC secrets and query interface.
func NewAuthenticator(secrets map[string][]byte, queries Queries) *Authenticator {
	return &Authenticator{
		secrets: secrets,
		queries: queries,
	}
}

// Authenticate validates an API key and returns the caller identity on
// success. Returns a specific error for each failure mode.
func (a *Authenticator) Authenticate(ctx context.Context, apiKey string) (Identity, error) {
	// Parse API key format
	secretID, _, err := ParseAPIKey(apiKey)
	if err != nil {
		return Identity{}, err
	}

	// O(1) lookup of HMAC secret using secret_id from key format
	secret, ok := a.secrets[secretID]
	if !ok {
		return Identity{}, ErrUnknownKey
	}

	computedHash := ComputeHMAC(secret, apiKey)

	// Query database by key_hash using named query (unique constraint ensures single result)
	var result struct {
		TenantID   string       `db:"tenant_id"`
		Scope      string       `db:"scope"`
		RevokedAt  sql.NullTime `db:"revoked_at"`
		APIKeyID   string       `db:"api_key_id"`
		LastUsedAt sql.NullTime `db:"last_used_at"`
	}

	err = a.queries.Get(ctx, "get-api-key-by-hash", &result, computedHash)
	if err == sql.ErrNoRows {
		return Identity{}, ErrInvalidKey
	}
	if err != nil {
		return Identity{}, fmt.Errorf("database error: %w", err)
	}

	// Check revocation status
	if result.RevokedAt.Valid {
		return Identity{}, ErrKeyRevoked
	}

	// Update last_used_at if >1 minute since last update
	// 1-minute throttle reduces write amplification for chatty clients
	if shouldUpdateLastUsed(result.LastUsedAt) {
		_, _ = a.queries.Exec(ctx, "update-last-used", time.Now().UTC(), result.APIKeyID)
	}

	return Identity{TenantID: result.TenantID, Scope: result.Scope}, nil
}

// shouldUpdateLastUsed implements 1-minute throttle to reduce write amplification.
func shouldUpdateLastUsed(lastUsed sql.NullTime) bool {
	if !lastUsed.Valid {
		return true
	}
	return time.Since(lastUsed.Time) > time.Minute
}

// scopePermits reports whether a key scope may call a method requiring
// the given scope.
func scopePermits(keyScope, required string) bool {
	if required == ScopeAdmin {
		return keyScope == ScopeAdmin
	}
	return keyScope == ScopeAdmin || keyScope == ScopeEvaluate
}

// UnaryInterceptor returns a gRPC interceptor that authenticates requests
// and enforces key scope. Methods listed in adminMethods (full method
// names, e.g. "/sieve.filter.v1.FilterAPI/SaveFilter") require the admin
// scope; everything else accepts any valid key.
func (a *Authenticator) UnaryInterceptor(adminMethods ...string) grpc.UnaryServerInterceptor {
	admin := make(map[string]bool, len(adminMethods))
	for _, m := range adminMethods {
		admin[m] = true
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		apiKeys := md.Get("x-api-key")
		if len(apiKeys) == 0 {
			return nil, status.Error(codes.Unauthenticated, ErrMissingKey.Error())
		}

		identity, err := a.Authenticate(ctx, apiKeys[0])
		if err != nil {
			if err == ErrKeyRevoked {
				return nil, status.Error(codes.PermissionDenied, err.Error())
			}
			// Check for database errors - return UNAVAILABLE instead of UNAUTHENTICATED
			if strings.Contains(err.Error(), "database error") {
				return nil, status.Error(codes.Unavailable, err.Error())
			}
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		required := ScopeEvaluate
		if admin[info.FullMethod] {
			required = ScopeAdmin
		}
		if !scopePermits(identity.Scope, required) {
			return nil, status.Error(codes.PermissionDenied, ErrScopeDenied.Error())
		}

		// Inject identity into context for downstream handlers
		ctx = context.WithValue(ctx, identityKey, identity)
		return handler(ctx, req)
	}
}

// IdentityFromContext extracts the authenticated identity from context.
// The second result is false if no identity was injected.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// TenantIDFromContext extracts the tenant ID from context.
// Returns empty string if not found.
func TenantIDFromContext(ctx context.Context) string {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.TenantID
	}
	return ""
}
