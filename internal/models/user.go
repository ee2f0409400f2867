package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a person using WalletWise. All other resources are
// scoped to the user owning them.
type User struct {
	DefaultModel
	Email    string `gorm:"uniqueIndex"`
	Password string `json:"-"` // The bcrypt hash of the password, never the plain text
	Name     string
	Phone    string
	Photo    string
}

var (
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrUserHasDependents = errors.New("the user still owns a wallet, budgets, categories or transactions and cannot be deleted")
)

// BeforeSave normalizes the email address and trims whitespace from
// string fields.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	u.Phone = strings.TrimSpace(u.Phone)

	return nil
}

// CreateUser persists a new user. The password must already be hashed
// by the caller.
func CreateUser(db *gorm.DB, user User) (User, error) {
	var count int64
	err := db.Model(&User{}).Where(&User{Email: strings.ToLower(strings.TrimSpace(user.Email))}).Count(&count).Error
	if err != nil {
		return User{}, err
	}

	if count > 0 {
		return User{}, ErrEmailAlreadyInUse
	}

	err = db.Create(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// UserByEmail loads a user by their email address, including the
// password hash for credential verification.
func UserByEmail(db *gorm.DB, email string) (User, error) {
	var user User
	err := db.Where(&User{Email: strings.ToLower(strings.TrimSpace(email))}).First(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// UserByID loads a user by their ID.
func UserByID(db *gorm.DB, id uuid.UUID) (User, error) {
	var user User
	err := db.First(&user, id).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// DeleteUser removes a user.
//
// Deletion is restricted: a user that still owns a wallet, budgets,
// categories or transactions cannot be deleted.
func DeleteUser(db *gorm.DB, id uuid.UUID) error {
	var user User
	err := db.First(&user, id).Error
	if err != nil {
		return err
	}

	dependents := []struct {
		model any
		query any
	}{
		{&Wallet{}, &Wallet{UserID: id}},
		{&Budget{}, &Budget{UserID: id}},
		{&Transaction{}, &Transaction{UserID: id}},
	}

	for _, dependent := range dependents {
		var count int64
		err = db.Model(dependent.model).Where(dependent.query).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrUserHasDependents
		}
	}

	// Categories reference the user with a nullable column, so the
	// struct query above would not match them
	var count int64
	err = db.Model(&Category{}).Where("user_id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrUserHasDependents
	}

	return db.Delete(&user).Error
}
