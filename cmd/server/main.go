package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pfried/graphperm/internal/handlers"
	"github.com/pfried/graphperm/internal/infrastructure/config"
	"github.com/pfried/graphperm/internal/infrastructure/database"
	"github.com/pfried/graphperm/internal/infrastructure/metrics"
	"github.com/pfried/graphperm/internal/repositories"
	neo4jstore "github.com/pfried/graphperm/internal/repositories/neo4j"
	"github.com/pfried/graphperm/internal/repositories/postgres"
	"github.com/pfried/graphperm/internal/services/resolution"
	"github.com/pfried/graphperm/pkg/cache/memorycache"
	pb "github.com/pfried/graphperm/proto/graphperm/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const (
	defaultEnv = "dev"
)

func main() {
	// Get environment from ENV variable or use default
	env := os.Getenv("ENV")
	if env == "" {
		env = defaultEnv
	}

	// Initialize configuration
	if err := config.InitConfig(env); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to the configured graph backend
	var store repositories.GraphStore
	var closeStore func() error

	switch cfg.Graph.Backend {
	case "postgres":
		pg, err := database.NewPostgres(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		log.Printf("Connected to database: %s@%s:%d/%s",
			cfg.Database.User,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Database)
		store = postgres.NewPostgresGraphStore(pg.DB)
		closeStore = pg.Close
	case "neo4j":
		driver, err := neo4jdriver.NewDriver(cfg.Neo4j.URI, neo4jdriver.BasicAuth(cfg.Neo4j.Username, cfg.Neo4j.Password, ""))
		if err != nil {
			log.Fatalf("Failed to create Neo4j driver: %v", err)
		}
		if err := driver.VerifyConnectivity(); err != nil {
			log.Fatalf("Failed to connect to Neo4j: %v", err)
		}
		log.Printf("Connected to Neo4j: %s", cfg.Neo4j.URI)
		store = neo4jstore.NewNeo4jGraphStore(driver)
		closeStore = driver.Close
	default:
		log.Fatalf("Unknown graph backend: %s", cfg.Graph.Backend)
	}

	// Initialize metrics
	collector := metrics.NewCollector()
	exporter := metrics.NewPrometheusExporter(collector)

	// Initialize resolver, optionally with a result cache
	var resolver resolution.ResolverInterface
	if cfg.Cache.Enabled {
		resolutionCache, err := memorycache.New(&memorycache.Config{
			MaxSizeBytes:  cfg.Cache.MaxMemoryBytes,
			DefaultTTL:    time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
			EnableMetrics: true,
		})
		if err != nil {
			log.Fatalf("Failed to create resolution cache: %v", err)
		}
		defer resolutionCache.Close()
		collector.SetCache(resolutionCache)
		resolver = resolution.NewResolverWithCache(resolutionCache, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
		log.Printf("Resolution cache enabled (%d MB, TTL %d minutes)",
			cfg.Cache.MaxMemoryBytes/(1024*1024), cfg.Cache.TTLMinutes)
	} else {
		resolver = resolution.NewResolver()
	}

	// Initialize permission handler
	permHandler := handlers.NewPermissionHandler(store, resolver, cfg.Resolver.MaxDepth)

	// Create gRPC server with metrics interceptor
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(metrics.UnaryServerInterceptor(collector, exporter)),
	)
	pb.RegisterPermissionServiceServer(grpcServer, permHandler)

	// Register reflection service (for grpcurl, etc.)
	reflection.Register(grpcServer)

	// Start metrics HTTP server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		log.Printf("Metrics server listening on :%d", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server error: %v", err)
		}
	}()

	// Refresh gauge metrics periodically
	gaugeTicker := time.NewTicker(10 * time.Second)
	defer gaugeTicker.Stop()
	go func() {
		for range gaugeTicker.C {
			exporter.Update()
		}
	}()

	// Start listening
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	log.Printf("gRPC server listening on %s:%d (max path depth %d)",
		cfg.Server.Host, cfg.Server.Port, cfg.Resolver.MaxDepth)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			serverErrors <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
		log.Println("Initiating graceful shutdown...")

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Channel to notify when graceful stop completes
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		// Wait for graceful stop or timeout
		select {
		case <-stopped:
			log.Println("Server stopped gracefully")
		case <-shutdownCtx.Done():
			log.Println("Shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		}

		// Stop the metrics server
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error stopping metrics server: %v", err)
		}

		// Close the graph backend
		if err := closeStore(); err != nil {
			log.Printf("Error closing graph backend: %v", err)
		}

		log.Println("Shutdown complete")
	}
}
