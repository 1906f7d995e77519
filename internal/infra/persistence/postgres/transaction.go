package postgres

import (
	"context"
	"fmt"

	"taxgrid/config"
	"taxgrid/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db        *gorm.DB
	bufferDeg float64
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx        *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	bufferDeg float64
}

// NewOrderRepository creates an order repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewJurisdictionRepository creates a jurisdiction repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewJurisdictionRepository() repository.JurisdictionRepository {
	return NewJurisdictionRepository(f.tx, f.bufferDeg)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	bufferDeg := config.DefaultBufferDegrees
	if cfg != nil && cfg.Tax != nil && cfg.Tax.BufferDegrees > 0 {
		bufferDeg = cfg.Tax.BufferDegrees
	}

	return &gormTransactionManager{db: db, bufferDeg: bufferDeg}
}

// Execute runs the given function within a single database transaction.
// The import pipeline commits each chunk through here: a chunk persists
// fully or not at all, and committed chunks stay committed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx, bufferDeg: tm.bufferDeg}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
