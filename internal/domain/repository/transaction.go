package repository

import "context"

// RepositoryFactory produces repository instances bound to a single
// transaction. Use cases receive it inside TransactionManager.Execute so every
// repository call within the callback shares the same transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	TaskRepo() TaskRepository
}

// TransactionManager runs a unit of work atomically. If fn returns an error
// the transaction is rolled back, otherwise it is committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
