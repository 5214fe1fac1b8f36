package domain

// DefaultRole is assigned when registration does not name one
const DefaultRole = "USER"

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                         // Primary key
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"` // Unique username
	Password string `gorm:"size:255;not null" json:"-"`                   // Hashed password, never serialized
	Role     string `gorm:"size:20;not null;default:USER" json:"role"`    // Role: USER, ADMIN, ...
}
