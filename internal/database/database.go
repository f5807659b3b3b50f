package database

import (
	"fmt"
	"time"

	"minicrm/internal/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newID() string {
	return uuid.New().String()
}

// Connect opens a GORM connection for the configured driver. SQLite is the
// default store; PostgreSQL is selectable for deployments that outgrow it.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Seed populates an empty database with sample customers, products,
// addresses, and two historical orders. It is a no-op when customers already
// exist. Seeded order quantities are deducted from product stock so the
// stock ledger balances from the start.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	customers := []models.Customer{
		{Name: "John Smith", Email: "john.smith@example.com", Phone: "+1-555-0101", CreatedAt: now.AddDate(0, 0, -10)},
		{Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Phone: "+1-555-0102", CreatedAt: now.AddDate(0, 0, -8)},
		{Name: "Michael Brown", Email: "michael.brown@example.com", Phone: "+1-555-0103", CreatedAt: now.AddDate(0, 0, -5)},
	}
	products := []models.Product{
		{Name: "Laptop Computer", Sku: "LAP-001", UnitPrice: 999.00, CurrentStock: 50, CreatedAt: now.AddDate(0, 0, -15)},
		{Name: "Wireless Mouse", Sku: "MOU-001", UnitPrice: 29.99, CurrentStock: 200, CreatedAt: now.AddDate(0, 0, -12)},
		{Name: "Mechanical Keyboard", Sku: "KEY-001", UnitPrice: 79.99, CurrentStock: 100, CreatedAt: now.AddDate(0, 0, -10)},
		{Name: "Monitor", Sku: "MON-001", UnitPrice: 299.00, CurrentStock: 30, CreatedAt: now.AddDate(0, 0, -7)},
		{Name: "USB-C Hub", Sku: "HUB-001", UnitPrice: 49.99, CurrentStock: 80, CreatedAt: now.AddDate(0, 0, -5)},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range customers {
			customers[i].ID = newID()
			if err := tx.Create(&customers[i]).Error; err != nil {
				return fmt.Errorf("failed to seed customer %s: %w", customers[i].Name, err)
			}
		}
		for i := range products {
			products[i].ID = newID()
			if err := tx.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
			}
		}

		addresses := []models.Address{
			{ID: newID(), CustomerID: customers[0].ID, Street: "12 Harbour St", Suburb: "Sydney", Postcode: "2000", State: "NSW"},
			{ID: newID(), CustomerID: customers[1].ID, Street: "88 Collins St", Suburb: "Melbourne", Postcode: "3000", State: "VIC"},
		}
		for i := range addresses {
			if err := tx.Create(&addresses[i]).Error; err != nil {
				return fmt.Errorf("failed to seed address: %w", err)
			}
		}

		orders := []models.Order{
			{
				ID:         newID(),
				CustomerID: customers[0].ID,
				Status:     models.OrderStatusCompleted,
				CreatedAt:  now.AddDate(0, 0, -3),
				Items: []models.OrderItem{
					{ID: newID(), ProductID: products[0].ID, Quantity: 2, UnitPrice: products[0].UnitPrice, LineTotal: 2 * products[0].UnitPrice},
					{ID: newID(), ProductID: products[1].ID, Quantity: 3, UnitPrice: products[1].UnitPrice, LineTotal: 3 * products[1].UnitPrice},
				},
			},
			{
				ID:         newID(),
				CustomerID: customers[1].ID,
				Status:     models.OrderStatusNew,
				CreatedAt:  now.AddDate(0, 0, -1),
				Items: []models.OrderItem{
					{ID: newID(), ProductID: products[2].ID, Quantity: 1, UnitPrice: products[2].UnitPrice, LineTotal: 1 * products[2].UnitPrice},
					{ID: newID(), ProductID: products[4].ID, Quantity: 2, UnitPrice: products[4].UnitPrice, LineTotal: 2 * products[4].UnitPrice},
				},
			},
		}
		for i := range orders {
			var total float64
			for j := range orders[i].Items {
				orders[i].Items[j].OrderID = orders[i].ID
				total += orders[i].Items[j].LineTotal

				res := tx.Model(&models.Product{}).
					Where("id = ?", orders[i].Items[j].ProductID).
					Update("current_stock", gorm.Expr("current_stock - ?", orders[i].Items[j].Quantity))
				if res.Error != nil {
					return fmt.Errorf("failed to deduct seeded stock: %w", res.Error)
				}
			}
			orders[i].TotalAmount = total
			if err := tx.Create(&orders[i]).Error; err != nil {
				return fmt.Errorf("failed to seed order: %w", err)
			}
		}

		log.WithFields(log.Fields{
			"customers": len(customers),
			"products":  len(products),
			"orders":    len(orders),
		}).Info("database seeded")
		return nil
	})
}
