package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an admin account for the dashboard and the write side of the
// API. Passwords are stored as bcrypt hashes.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;size:80;not null;unique" json:"username"`
	Email        string    `gorm:"column:email;size:255;not null;unique" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:100" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SetPassword hashes and stores the given password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
