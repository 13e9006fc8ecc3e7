package service

import (
	"testing"

	"github.com/omerkonca/kantin23/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection, otherwise every pooled conn gets its own :memory: db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.Sale{},
		&models.Credit{},
		&models.Payment{},
	))
	return db
}

func createCustomer(t *testing.T, db *gorm.DB, name string, balance int64, creditLimit *int64) models.Profile {
	t.Helper()

	p := models.Profile{
		Email:   name + "@kantin.local",
		Name:    name,
		Role:    models.RoleCustomer,
		Balance: decimal.NewFromInt(balance),
	}
	if creditLimit != nil {
		p.CreditLimit = decimal.NewNullDecimal(decimal.NewFromInt(*creditLimit))
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int64) models.Product {
	t.Helper()

	p := models.Product{
		Name:  name,
		Price: decimal.NewFromInt(price),
		Stock: stock,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func reload[T any](t *testing.T, db *gorm.DB, id uint) T {
	t.Helper()

	var v T
	require.NoError(t, db.First(&v, id).Error)
	return v
}

func int64Ptr(v int64) *int64 { return &v }
