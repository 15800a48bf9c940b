package handlers

import (
	"context"
	"errors"

	"github.com/pfried/graphperm/internal/repositories"
	"github.com/pfried/graphperm/internal/services/resolution"
	pb "github.com/pfried/graphperm/proto/graphperm/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// defaultIDProperty is used when a selector does not name an
	// identifier property.
	defaultIDProperty = "id"

	// defaultPrincipalLabel is used when the principal selector does not
	// name a label.
	defaultPrincipalLabel = "Principal"
)

// PermissionHandler handles all permission service gRPC requests
type PermissionHandler struct {
	store    repositories.GraphStore
	resolver resolution.ResolverInterface
	maxDepth int

	pb.UnimplementedPermissionServiceServer
}

// NewPermissionHandler creates a new PermissionHandler.
// maxDepth is the server-wide path length limit applied when a request
// does not set one; values <= 0 fall back to the resolution default.
func NewPermissionHandler(store repositories.GraphStore, resolver resolution.ResolverInterface, maxDepth int) *PermissionHandler {
	if maxDepth <= 0 {
		maxDepth = resolution.DefaultMaxDepth
	}
	return &PermissionHandler{
		store:    store,
		resolver: resolver,
		maxDepth: maxDepth,
	}
}

// ResolvePermissions handles the ResolvePermissions RPC
func (h *PermissionHandler) ResolvePermissions(ctx context.Context, req *pb.ResolvePermissionsRequest) (*pb.ResolvePermissionsResponse, error) {
	// Validate request
	if req.Resource == nil {
		return nil, status.Error(codes.InvalidArgument, "resource is required")
	}
	if req.Resource.Label == "" {
		return nil, status.Error(codes.InvalidArgument, "resource label is required")
	}
	if req.Resource.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "resource id is required")
	}
	if req.Principal == nil {
		return nil, status.Error(codes.InvalidArgument, "principal is required")
	}
	if req.Principal.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "principal id is required")
	}

	principalLabel := req.Principal.Label
	if principalLabel == "" {
		principalLabel = defaultPrincipalLabel
	}

	maxDepth := h.maxDepth
	if req.MaxDepth > 0 {
		maxDepth = int(req.MaxDepth)
	}

	// One consistent view of the graph for both lookups and traversal.
	snap, err := h.store.Snapshot(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to open graph snapshot: %v", err)
	}
	defer snap.Close()

	resource, err := snap.FindNodeByLabelAndProperty(ctx, req.Resource.Label, idProperty(req.Resource), req.Resource.Id)
	if err != nil {
		if errors.Is(err, repositories.ErrNodeNotFound) {
			return nil, status.Errorf(codes.NotFound, "resource %s %q not found", req.Resource.Label, req.Resource.Id)
		}
		return nil, status.Errorf(codes.Internal, "failed to look up resource: %v", err)
	}

	principal, err := snap.FindNodeByLabelAndProperty(ctx, principalLabel, idProperty(req.Principal), req.Principal.Id)
	if err != nil {
		if errors.Is(err, repositories.ErrNodeNotFound) {
			return nil, status.Errorf(codes.NotFound, "principal %s %q not found", principalLabel, req.Principal.Id)
		}
		return nil, status.Errorf(codes.Internal, "failed to look up principal: %v", err)
	}

	resolveResp, err := h.resolver.Resolve(ctx, snap, &resolution.ResolveRequest{
		Resource:  resource,
		Principal: principal,
		MaxDepth:  maxDepth,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to resolve permissions: %v", err)
	}

	return &pb.ResolvePermissionsResponse{
		Permissions: resolveResp.Permissions.String(),
		PathCount:   int32(resolveResp.PathCount),
	}, nil
}

// idProperty returns the identifier property of a selector, defaulting
// to "id" when unset.
func idProperty(sel *pb.NodeSelector) string {
	if sel.IdProperty != "" {
		return sel.IdProperty
	}
	return defaultIDProperty
}
