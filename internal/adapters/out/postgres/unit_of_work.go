// Package postgres provides the GORM-based Unit of Work over the bakery's
// stored functions.
//
// Every repository handed out by a GormUnitOfWork is bound to the unit's
// transaction once Begin has been called, so a command that touches several
// rows (a person and an employee, an order and its status) commits or rolls
// back as one.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, observer)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.EmployeeRepository().Add(ctx, e); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
package postgres

import (
	"context"

	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/employeerepo"
	"bakery/internal/adapters/out/postgres/inventoryrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/adapters/out/postgres/supplierrepo"
	"bakery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	Kind      string
	ID        int64
	Aggregate any
}

// CommitObserver is told about every aggregate written by a committed unit of work.
type CommitObserver interface {
	AggregateCommitted(kind string)
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer CommitObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// observer may be nil.
func NewGormUnitOfWorkFactory(db *gorm.DB, observer CommitObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		observer:          f.observer,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks the aggregates
// written inside them. Tracked aggregates are reported to the CommitObserver
// after a successful commit and dropped on rollback.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	observer          CommitObserver
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	if uow.observer != nil {
		for _, tracked := range uow.trackedAggregates {
			uow.observer.AggregateCommitted(tracked.Kind)
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Command handlers defer it unconditionally, so after a Commit it returns
// gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SupplierRepository() ports.SupplierRepository {
	return supplierrepo.NewGormSupplierRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// OrderRepository provides access to order persistence operations within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as written within this unit of work.
// Repositories call it after every successful statement.
func (uow *GormUnitOfWork) TrackAggregate(kind string, id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Kind:      kind,
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool when Begin was not called.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
