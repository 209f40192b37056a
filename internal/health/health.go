package health

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Checker is one component the service depends on
type Checker interface {
	HealthCheck(ctx context.Context) error
	IsCritical() bool // Critical components block startup if unhealthy
	Name() string
}

// Manager runs the registered checkers
type Manager struct {
	checkers []Checker
	logger   *zap.Logger
	mu       sync.RWMutex
}

// NewManager creates a new health manager
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		checkers: make([]Checker, 0),
		logger:   logger,
	}
}

// AddChecker adds a health checker to the manager
func (m *Manager) AddChecker(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

// StartupHealthCheck fails when any critical checker fails. Non-critical
// failures are only logged.
func (m *Manager) StartupHealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var criticalFailures []error
	for _, checker := range m.checkers {
		err := checker.HealthCheck(ctx)
		switch {
		case err == nil:
			m.logger.Info("Service health check passed",
				zap.String("service", checker.Name()),
				zap.Bool("critical", checker.IsCritical()))
		case checker.IsCritical():
			criticalFailures = append(criticalFailures, fmt.Errorf("%s: %w", checker.Name(), err))
			m.logger.Error("Critical service health check failed",
				zap.String("service", checker.Name()),
				zap.Error(err))
		default:
			m.logger.Warn("Non-critical service health check failed",
				zap.String("service", checker.Name()),
				zap.Error(err))
		}
	}

	if len(criticalFailures) > 0 {
		return fmt.Errorf("critical services failed health check: %w", errors.Join(criticalFailures...))
	}

	m.logger.Info("All critical services healthy", zap.Int("total_checks", len(m.checkers)))
	return nil
}

// RuntimeHealthCheck returns each checker's result keyed by name
func (m *Manager) RuntimeHealthCheck(ctx context.Context) map[string]error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make(map[string]error, len(m.checkers))
	for _, checker := range m.checkers {
		results[checker.Name()] = checker.HealthCheck(ctx)
	}
	return results
}

// Pinger is satisfied by data.Store and *bun.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseChecker checks database connectivity
type DatabaseChecker struct {
	db Pinger
}

// NewDatabaseChecker creates a database health checker
func NewDatabaseChecker(db Pinger) *DatabaseChecker {
	return &DatabaseChecker{db: db}
}

func (d *DatabaseChecker) HealthCheck(ctx context.Context) error {
	if d.db == nil {
		return fmt.Errorf("database is not configured")
	}
	return d.db.PingContext(ctx)
}

func (d *DatabaseChecker) IsCritical() bool {
	return true
}

func (d *DatabaseChecker) Name() string {
	return "database"
}

// Validator is satisfied by *config.Config
type Validator interface {
	Validate() error
}

// ConfigChecker checks configuration validity
type ConfigChecker struct {
	config Validator
}

// NewConfigChecker creates a config health checker
func NewConfigChecker(config Validator) *ConfigChecker {
	return &ConfigChecker{config: config}
}

func (c *ConfigChecker) HealthCheck(ctx context.Context) error {
	if c.config == nil {
		return fmt.Errorf("configuration is nil")
	}
	return c.config.Validate()
}

func (c *ConfigChecker) IsCritical() bool {
	return true
}

func (c *ConfigChecker) Name() string {
	return "configuration"
}
