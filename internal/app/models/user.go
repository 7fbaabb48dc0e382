package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email        string    `json:"email" db:"email" example:"student1@dlsu.edu.ph"`          // User's email address (unique)
	Name         string    `json:"name" db:"name" example:"Tony Stark"`                      // User's display name
	Role         Role      `json:"role" db:"role" example:"STUDENT"`                         // User's role (STUDENT, FACULTY or ADMIN)
	PasswordHash string    `json:"-" db:"password_hash"`                                     // Hashed credential (excluded from JSON)
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
