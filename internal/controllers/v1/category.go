package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/walletwise/backend/internal/auth"
	"github.com/walletwise/backend/internal/httputil"
	"github.com/walletwise/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
//
// The default category endpoint is a seeding path without
// authentication, all other routes require a bearer token.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Seeding path for default categories, no authentication
	r.POST("/default", CreateDefaultCategory)
	r.OPTIONS("/default", OptionsCategoryDefault)

	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", auth.Middleware(), GetCategories)
		r.POST("", auth.Middleware(), CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.PATCH("/:id", auth.Middleware(), UpdateCategory)
		r.DELETE("/:id", auth.Middleware(), DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/category [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/category/default [options]
func OptionsCategoryDefault(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the category"
// @Router			/v1/category/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category owned by the user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/category [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)
	userID := identity.UserID

	category := models.Category{
		Name:        editable.Name,
		Description: editable.Description,
		Icon:        editable.Icon,
		UserID:      &userID,
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		Create default category
// @Description	Creates a category without an owner that is visible to every user. Used for seeding.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/category/default [post]
func CreateDefaultCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category := models.Category{
		Name:        editable.Name,
		Description: editable.Description,
		Icon:        editable.Icon,
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns the categories visible to the user, their own and the default ones
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			name	query		string	false	"Filter by name, glob patterns are supported"
// @Router			/v1/category [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	identity := auth.ActiveIdentity(c)

	categories, err := models.CategoriesForUser(models.DB, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	apiResources := make([]Category, 0, len(categories))
	for _, category := range categories {
		if filter.Name != "" && !glob.Glob(filter.Name, category.Name) {
			continue
		}

		apiResources = append(apiResources, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: apiResources})
}

// @Summary		Update category
// @Description	Updates a category owned by the user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/category/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	var update map[string]any
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	category, err := models.UpdateCategory(models.DB, uri.ID.UUID, identity.UserID, update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category owned by the user. Categories that budgets or transactions reference cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/category/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	identity := auth.ActiveIdentity(c)

	err = models.DeleteCategory(models.DB, uri.ID.UUID, identity.UserID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
