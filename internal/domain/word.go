package domain

// SecretWord Model. The pool is seeded once by the migrator and is read-only
// at runtime.
type SecretWord struct {
	ID   uint   `gorm:"primaryKey"`              // Primary key
	Word string `gorm:"size:5;unique;not null"`  // Five uppercase letters
}

// DefaultWordPool is the fixed pool of secret words seeded into the database.
var DefaultWordPool = []string{
	"APPLE", "GRAPE", "JUICE", "LEMON", "PEACH",
	"WORLD", "LIGHT", "HEART", "MONEY", "STORE",
	"TABLE", "CHAIR", "WATER", "EARTH", "PLANT",
	"SPACE", "DREAM", "SHIFT", "BREAK", "TRAIN",
}
