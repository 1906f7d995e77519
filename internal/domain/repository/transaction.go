package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewJurisdictionRepository() JurisdictionRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. The import pipeline commits each chunk through Execute, so a
// chunk either persists fully or not at all; chunks already committed are
// never rolled back by a later failure.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
