package e2e

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/pfried/graphperm/internal/handlers"
	"github.com/pfried/graphperm/internal/repositories/memory"
	"github.com/pfried/graphperm/internal/services/resolution"
	"github.com/pfried/graphperm/pkg/cache/memorycache"
	pb "github.com/pfried/graphperm/proto/graphperm/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// E2ETestServer represents an E2E test server backed by the in-memory
// graph store.
type E2ETestServer struct {
	Server   *grpc.Server
	Client   pb.PermissionServiceClient
	Graph    *memory.Graph
	Conn     *grpc.ClientConn
	Listener *bufconn.Listener
}

// SetupE2ETest starts a full gRPC stack over bufconn. The populate
// callback seeds the graph before the server starts serving.
func SetupE2ETest(t *testing.T, populate func(g *memory.Graph)) *E2ETestServer {
	t.Helper()

	graph := memory.NewGraph()
	if populate != nil {
		populate(graph)
	}

	resolutionCache, err := memorycache.New(&memorycache.Config{
		MaxSizeBytes:  1024 * 1024,
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatalf("failed to create resolution cache: %v", err)
	}

	resolver := resolution.NewResolverWithCache(resolutionCache, time.Minute)
	handler := handlers.NewPermissionHandler(graph, resolver, resolution.DefaultMaxDepth)

	// Create in-memory gRPC server with bufconn
	listener := bufconn.Listen(bufSize)
	server := grpc.NewServer()
	pb.RegisterPermissionServiceServer(server, handler)

	// Start server in background
	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	// Create client connection
	bufDialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	conn, err := grpc.NewClient(
		"passthrough://bufconn",
		grpc.WithContextDialer(bufDialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create client connection: %v", err)
	}

	return &E2ETestServer{
		Server:   server,
		Client:   pb.NewPermissionServiceClient(conn),
		Graph:    graph,
		Conn:     conn,
		Listener: listener,
	}
}

// Teardown cleans up the E2E test environment
func (e *E2ETestServer) Teardown(t *testing.T) {
	t.Helper()

	if e.Conn != nil {
		e.Conn.Close()
	}
	if e.Server != nil {
		e.Server.Stop()
	}
	if e.Listener != nil {
		e.Listener.Close()
	}
}
