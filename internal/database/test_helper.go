package database

import (
	"fmt"
	"testing"
	"time"

	"payment-api/internal/config"
	"payment-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"transaction_master",
	"merchants",
}

// SetupTestDB opens a migrated in-memory sqlite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CleanupTestDB empties every table
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// CreateTestMerchant inserts an active merchant with fake contact details
func CreateTestMerchant(t *testing.T, db *DB, merchantID, name string) *models.Merchant {
	t.Helper()

	merchant := &models.Merchant{
		MerchantID:   merchantID,
		MerchantName: name,
		BusinessName: name + " " + gofakeit.CompanySuffix(),
		Email:        gofakeit.Email(),
		Phone:        gofakeit.Phone(),
		BusinessType: models.BusinessTypeRetail,
		IsActive:     true,
	}

	if err := db.Create(merchant).Error; err != nil {
		t.Fatalf("failed to create test merchant: %v", err)
	}

	return merchant
}

// TestTransaction describes the fields a test cares about; the rest are faked
type TestTransaction struct {
	MerchantID string
	Date       models.Date
	Amount     string
	Status     string
	CardType   *string
	LocalTime  *time.Time
}

// CreateTestTransaction inserts a transaction built from fixture
func CreateTestTransaction(t *testing.T, db *DB, fixture TestTransaction) *models.Transaction {
	t.Helper()

	cardLast4 := gofakeit.Numerify("####")
	authCode := gofakeit.LetterN(6)
	txn := &models.Transaction{
		MerchantID:       fixture.MerchantID,
		TxnDate:          fixture.Date,
		LocalTxnDateTime: fixture.LocalTime,
		Amount:           decimal.RequireFromString(fixture.Amount),
		Currency:         models.DefaultCurrency,
		Status:           fixture.Status,
		CardType:         fixture.CardType,
		CardLast4:        &cardLast4,
		AuthCode:         &authCode,
		CreatedAt:        fixture.Date.StartOfDay().Add(time.Duration(gofakeit.Number(0, 86399)) * time.Second),
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}
