package main

import (
	"guess_the_word/internal/config"
	"guess_the_word/internal/db"
)

// Main entry point for migration and word-pool seeding
func main() {
	cfg := config.LoadConfig()
	db.Migrate(cfg.DSN())
}
