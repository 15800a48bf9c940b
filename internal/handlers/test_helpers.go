package handlers

import (
	"context"

	"github.com/pfried/graphperm/internal/repositories"
	"github.com/pfried/graphperm/internal/services/resolution"
)

// mockResolver is a mock implementation of resolution.ResolverInterface
type mockResolver struct {
	resolveFunc func(ctx context.Context, snap repositories.GraphSnapshot, req *resolution.ResolveRequest) (*resolution.ResolveResponse, error)
}

func (m *mockResolver) Resolve(ctx context.Context, snap repositories.GraphSnapshot, req *resolution.ResolveRequest) (*resolution.ResolveResponse, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, snap, req)
	}
	return &resolution.ResolveResponse{}, nil
}
