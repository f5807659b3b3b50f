package repositories

import (
	"gorm.io/gorm"
)

// TxRepos bundles the repositories scoped to one database transaction. Every
// read and write performed through them belongs to the same unit of work.
type TxRepos struct {
	Customers CustomerRepository
	Products  ProductRepository
	Orders    OrderRepository
	Addresses AddressRepository
}

// TxManager runs a function inside a single transaction boundary. If fn
// returns an error the whole transaction is rolled back, so no partial stock
// mutation or half-written order can survive.
type TxManager interface {
	InTransaction(fn func(repos TxRepos) error) error
}

// GORMTxManager is a GORM implementation of TxManager.
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{
		db: db,
	}
}

// InTransaction runs fn with repositories bound to one transaction, committing
// on a nil return and rolling back on any error or panic.
func (m *GORMTxManager) InTransaction(fn func(repos TxRepos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(TxRepos{
			Customers: NewGORMCustomerRepository(tx),
			Products:  NewGORMProductRepository(tx),
			Orders:    NewGORMOrderRepository(tx),
			Addresses: NewGORMAddressRepository(tx),
		})
	})
}
