package resolution

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories"
	"github.com/pfried/graphperm/pkg/cache"
)

// ResolverInterface defines the interface for permission resolution
type ResolverInterface interface {
	Resolve(ctx context.Context, snap repositories.GraphSnapshot, req *ResolveRequest) (*ResolveResponse, error)
}

// ResolveRequest contains the parameters for one resolution call.
// Resource and Principal must be valid node handles already looked up
// through the graph accessor; argument validation is the request boundary's
// job, not the resolver's.
type ResolveRequest struct {
	Resource  *entities.Node
	Principal *entities.Node
	MaxDepth  int // Maximum edge count per path; must be >= 0
}

// ResolveResponse contains the result of a resolution call
type ResolveResponse struct {
	Permissions entities.PermissionVector // Union of all grants on all paths
	PathCount   int                       // Number of qualifying paths found
}

// Resolver computes the effective permissions a principal holds over a
// resource: it enumerates every qualifying path, extracts the grant carried
// by each SECURITY edge on those paths, and folds everything into one
// vector. No connecting path is a normal "no access" result; only accessor
// faults surface as errors.
type Resolver struct {
	cache    cache.Cache // Optional cache for resolution results
	cacheTTL time.Duration
}

// NewResolver creates a new Resolver without caching
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewResolverWithCache creates a new Resolver that caches resolution results.
// Cached entries are keyed by the node IDs and depth bound; the TTL bounds
// staleness after graph changes.
func NewResolverWithCache(c cache.Cache, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// generateCacheKey generates a cache key for the resolution request
func (r *Resolver) generateCacheKey(req *ResolveRequest) string {
	keyData := fmt.Sprintf("%d:%d:%d", req.Resource.ID, req.Principal.ID, req.MaxDepth)
	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:])
}

// Resolve computes the permission vector for one (resource, principal) pair.
// It returns the zero vector when no path connects the pair within the depth
// bound. Accessor faults propagate; they are never converted into a zero
// result, since that would misreport "unknown" as "no access".
func (r *Resolver) Resolve(
	ctx context.Context,
	snap repositories.GraphSnapshot,
	req *ResolveRequest,
) (*ResolveResponse, error) {
	if req.Resource == nil || req.Principal == nil {
		return nil, fmt.Errorf("resource and principal nodes are required")
	}
	if req.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative (got %d)", req.MaxDepth)
	}

	var cacheKey string
	if r.cache != nil {
		cacheKey = r.generateCacheKey(req)
		if cached, found := r.cache.Get(ctx, cacheKey); found {
			if resp, ok := cached.(*ResolveResponse); ok {
				return resp, nil
			}
		}
	}

	var permissions entities.PermissionVector
	pathCount := 0

	err := EnumeratePaths(ctx, snap, req.Resource.ID, req.Principal.ID, req.MaxDepth, func(path *entities.Path) error {
		var pathPermissions entities.PermissionVector
		for _, edge := range path.Edges {
			if edge.Type != entities.EdgeTypeSecurity {
				continue
			}
			pathPermissions = pathPermissions.Merge(ExtractPermissions(edge))
		}
		permissions = permissions.Merge(pathPermissions)
		pathCount++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate paths: %w", err)
	}

	resp := &ResolveResponse{
		Permissions: permissions,
		PathCount:   pathCount,
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, resp, r.cacheTTL)
	}

	return resp, nil
}
