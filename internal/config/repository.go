package config

import (
	"fmt"
	"os"

	"challenge-tracker/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from CT_ENV
func GetEnvironment() Environment {
	switch os.Getenv("CT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env    Environment
	config *Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, config: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		// Local database in the working directory
		return rf.open("ct.db")
	case Testing:
		return CreateTestRepository()
	default:
		return CreateRepository(rf.config)
	}
}

func (rf *RepositoryFactory) open(path string) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(path, repositoryOptions(rf.config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", rf.env, err)
	}
	return repo, nil
}

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), repositoryOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}

func repositoryOptions(config *Config) sqlite.Options {
	if config == nil {
		return sqlite.DefaultOptions()
	}
	return sqlite.Options{
		QueryTimeout:   config.GetQueryTimeout(),
		WriteTimeout:   config.GetWriteTimeout(),
		DirPermissions: os.FileMode(config.Storage.DirPermissions),
	}
}
