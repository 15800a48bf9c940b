package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig
	Graph    GraphConfig
	Database DatabaseConfig
	Neo4j    Neo4jConfig
	Cache    CacheConfig
	Resolver ResolverConfig
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host        string
	Port        int
	MetricsPort int // Port for Prometheus metrics HTTP server
}

// GraphConfig selects the graph storage backend
type GraphConfig struct {
	Backend string // "postgres" or "neo4j"
}

// DatabaseConfig represents PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// Neo4jConfig represents Neo4j configuration
type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// CacheConfig represents resolution result cache configuration
type CacheConfig struct {
	Enabled        bool
	MaxMemoryBytes int64 // Maximum memory usage in bytes (e.g., 104857600 = 100MB)
	TTLMinutes     int   // Time-to-live for cached resolutions in minutes
}

// ResolverConfig represents resolution configuration
type ResolverConfig struct {
	MaxDepth int // Maximum number of edges per candidate path
}

// findProjectRoot finds the project root directory by looking for go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up the directory tree until we find go.mod
	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the root directory
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// InitConfig initializes viper configuration
// env: environment name (dev, test, prod)
func InitConfig(env string) error {
	if env == "" {
		env = "dev"
	}

	// Find project root
	projectRoot, err := findProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}

	// Set config file name based on environment
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(projectRoot) // Project root

	// Read config file (optional, ignore error if not found)
	_ = viper.ReadInConfig()

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 50051)
	viper.SetDefault("METRICS_PORT", 9090)

	viper.SetDefault("GRAPH_BACKEND", "postgres")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 15432)
	viper.SetDefault("DB_USER", "graphperm")
	viper.SetDefault("DB_NAME", "graphperm_dev")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.SetDefault("NEO4J_URI", "bolt://localhost:7687")
	viper.SetDefault("NEO4J_USERNAME", "neo4j")

	// Cache defaults
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_MAX_MEMORY_BYTES", 100*1024*1024) // 100MB
	viper.SetDefault("CACHE_TTL_MINUTES", 5)                  // 5 minutes TTL

	// Resolver defaults
	viper.SetDefault("RESOLVER_MAX_DEPTH", 20)

	return nil
}

// Load loads configuration from viper
func Load() (*Config, error) {
	backend := viper.GetString("GRAPH_BACKEND")
	if backend != "postgres" && backend != "neo4j" {
		return nil, fmt.Errorf("GRAPH_BACKEND must be \"postgres\" or \"neo4j\" (got %q)", backend)
	}

	// The active backend's password is required
	dbPassword := viper.GetString("DB_PASSWORD")
	if backend == "postgres" && dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required (set via environment variable or .env file)")
	}
	neo4jPassword := viper.GetString("NEO4J_PASSWORD")
	if backend == "neo4j" && neo4jPassword == "" {
		return nil, fmt.Errorf("NEO4J_PASSWORD is required (set via environment variable or .env file)")
	}

	maxDepth := viper.GetInt("RESOLVER_MAX_DEPTH")
	if maxDepth <= 0 {
		return nil, fmt.Errorf("RESOLVER_MAX_DEPTH must be positive (got %d)", maxDepth)
	}

	config := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("SERVER_HOST"),
			Port:        viper.GetInt("SERVER_PORT"),
			MetricsPort: viper.GetInt("METRICS_PORT"),
		},
		Graph: GraphConfig{
			Backend: backend,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: dbPassword,
			Database: viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Neo4j: Neo4jConfig{
			URI:      viper.GetString("NEO4J_URI"),
			Username: viper.GetString("NEO4J_USERNAME"),
			Password: neo4jPassword,
		},
		Cache: CacheConfig{
			Enabled:        viper.GetBool("CACHE_ENABLED"),
			MaxMemoryBytes: viper.GetInt64("CACHE_MAX_MEMORY_BYTES"),
			TTLMinutes:     viper.GetInt("CACHE_TTL_MINUTES"),
		},
		Resolver: ResolverConfig{
			MaxDepth: maxDepth,
		},
	}

	return config, nil
}

// ConnectionString returns PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}
