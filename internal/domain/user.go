package domain

// Role values. The first registered user becomes admin, everyone after is a
// player. Roles are fixed at registration time.
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`      // Primary key
	Username string `gorm:"unique;not null"` // Unique username
	Password string `gorm:"not null"`        // Hashed password (bcrypt)
	Role     string `gorm:"default:player"`  // Role: player or admin
}
