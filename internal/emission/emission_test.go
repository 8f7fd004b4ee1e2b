package emission

import (
	"fmt"
	"math"
	"testing"

	"github.com/Minarsribabu/Eco-Cred/internal/database"
	"github.com/Minarsribabu/Eco-Cred/internal/models"
	"github.com/Minarsribabu/Eco-Cred/internal/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema.
// The DSN is named per test so pooled connections share one database
// without leaking state across tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// seedFactor inserts one emission factor row.
func seedFactor(t *testing.T, db *gorm.DB, category, typ, unit string, value float64) {
	t.Helper()

	f := models.EmissionFactor{
		ID:          util.NewID("ef"),
		Category:    category,
		Type:        typ,
		Unit:        unit,
		FactorValue: value,
		FactorUnit:  "kgCO2e/" + unit,
		Source:      "test",
	}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed factor %s/%s/%s: %v", category, typ, unit, err)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
