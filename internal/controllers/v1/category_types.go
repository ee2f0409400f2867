package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/walletwise/backend/internal/models"
)

type CategoryEditable struct {
	Name        string `json:"name" example:"Groceries" binding:"required"`      // Name of the category
	Description string `json:"description" example:"Everyday food shopping"`     // Notes about the category
	Icon        string `json:"icon" example:"shopping-cart"`                     // Icon identifier for clients
}

type CategoryQueryFilter struct {
	Name string `form:"name" filterField:"false"` // Filter by name, glob patterns are supported
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // The category itself
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	Name        string        `json:"name" example:"Groceries"`
	Description string        `json:"description" example:"Everyday food shopping"`
	Icon        string        `json:"icon" example:"shopping-cart"`
	UserID      *uuid.UUID    `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // nil for default categories
	Links       CategoryLinks `json:"links"`
}

// newCategory returns the API representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Description:  model.Description,
		Icon:         model.Icon,
		UserID:       model.UserID,
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/category/%s", url, model.ID),
		},
	}
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The category data, if the request was successful
}

type CategoryListResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Category `json:"data"`                                                          // List of categories
}
