package db

import (
	"guess_the_word/internal/domain"

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Migrate creates the schema and seeds the fixed secret word pool.
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(
		&domain.User{},
		&domain.SecretWord{},
		&domain.GameSession{},
		&domain.Guess{},
		&domain.DailyQuota{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := SeedWords(db); err != nil {
		logrus.Fatalf("word seeding failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

// SeedWords inserts the default pool, skipping words already present so the
// migrator can be re-run.
func SeedWords(db *gorm.DB) error {
	for _, w := range domain.DefaultWordPool {
		word := domain.SecretWord{Word: w}
		if err := db.Where("word = ?", w).FirstOrCreate(&word).Error; err != nil {
			return err
		}
	}
	return nil
}
