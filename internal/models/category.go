package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a spending category.
//
// A category without a user is a default category that is visible to
// every user, but can only be changed through the seeding endpoint.
type Category struct {
	DefaultModel
	Name        string
	Description string
	Icon        string
	UserID      *uuid.UUID // nil for default categories
	User        *User      `json:"-"`
}

var (
	ErrCategoryNotOwned      = errors.New("unauthorized access to custom category")
	ErrCategoryHasDependents = errors.New("the category is still referenced by budgets or transactions and cannot be deleted")
)

// BeforeSave trims whitespace from string fields.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Icon = strings.TrimSpace(c.Icon)

	return nil
}

// CategoryByID loads a category and verifies that the user is allowed
// to use it. Default categories are accessible to everyone.
func CategoryByID(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (Category, error) {
	var category Category
	err := db.First(&category, id).Error
	if err != nil {
		return Category{}, err
	}

	if category.UserID != nil && *category.UserID != userID {
		return Category{}, ErrCategoryNotOwned
	}

	return category, nil
}

// CategoriesForUser returns the categories visible to the user, which
// are their own categories and all default categories.
func CategoriesForUser(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := db.Where("user_id = ? OR user_id IS NULL", userID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// ownedCategory loads a category scoped to its owner. Default
// categories do not match here since they have no owner.
func ownedCategory(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (Category, error) {
	var category Category
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// UpdateCategory applies the changed fields to a category owned by the
// user. Only the name, description and icon can be changed.
func UpdateCategory(db *gorm.DB, id uuid.UUID, userID uuid.UUID, update map[string]any) (Category, error) {
	category, err := ownedCategory(db, id, userID)
	if err != nil {
		return Category{}, err
	}

	changes := make(map[string]any)
	for _, field := range []string{"name", "description", "icon"} {
		if value, ok := update[field]; ok {
			changes[field] = value
		}
	}

	if len(changes) > 0 {
		err = db.Model(&category).Updates(changes).Error
		if err != nil {
			return Category{}, err
		}
	}

	// Reload so that the response contains the updated values
	return ownedCategory(db, id, userID)
}

// DeleteCategory removes a category owned by the user.
//
// Deletion is restricted: a category that budgets or transactions
// still reference cannot be deleted.
func DeleteCategory(db *gorm.DB, id uuid.UUID, userID uuid.UUID) error {
	category, err := ownedCategory(db, id, userID)
	if err != nil {
		return err
	}

	for _, dependent := range []any{&Budget{}, &Transaction{}} {
		var count int64
		err = db.Model(dependent).Where("category_id = ?", id).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrCategoryHasDependents
		}
	}

	return db.Delete(&category).Error
}
