package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. A non-nil error from fn rolls back, otherwise it commits.
	// Repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	ProductRepo() ProductRepository
	CartRepo() CartRepository
	OrderRepo() OrderRepository
	CustomerRepo() CustomerRepository
}
