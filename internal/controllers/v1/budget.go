package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/walletwise/backend/internal/auth"
	"github.com/walletwise/backend/internal/httputil"
	"github.com/walletwise/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.PATCH("/:id", UpdateBudget)
		r.GET("/:id/amount", GetBudgetAmount)
		r.GET("/stats/:id", GetBudgetStats)
		r.GET("/category/:id", GetBudgetByCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	string	true	"ID of the budget"
// @Router			/v1/budget/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget for a category, debiting the amount from the wallet
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	budget, err := models.CreateBudget(models.DB, editable.Amount, editable.CategoryID, editable.Period, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns all budgets of the user
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budget [get]
func GetBudgets(c *gin.Context) {
	identity := auth.ActiveIdentity(c)

	budgets, err := models.BudgetsForUser(models.DB, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	apiResources := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		apiResources = append(apiResources, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: apiResources})
}

// @Summary		Update budget
// @Description	Raises the amount of a budget, debiting the difference from the wallet
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		string			true	"ID of the budget"
// @Param			budget	body		BudgetUpdate	true	"Budget"
// @Router			/v1/budget/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	var update BudgetUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	budget, err := models.UpdateBudgetAmount(models.DB, uri.ID.UUID, update.Amount, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Budget amount
// @Description	Returns the raw amount of a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetAmountResponse
// @Failure		400	{object}	BudgetAmountResponse
// @Failure		404	{object}	BudgetAmountResponse
// @Failure		500	{object}	BudgetAmountResponse
// @Param			id	path		string	true	"ID of the budget"
// @Router			/v1/budget/{id}/amount [get]
func GetBudgetAmount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetAmountResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	amount, err := models.BudgetAmount(models.DB, uri.ID.UUID, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAmountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetAmountResponse{Data: &amount})
}

// @Summary		Budget statistics
// @Description	Returns the derived statistics for a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetStatsResponse
// @Failure		400	{object}	BudgetStatsResponse
// @Failure		404	{object}	BudgetStatsResponse
// @Failure		500	{object}	BudgetStatsResponse
// @Param			id	path		string	true	"ID of the budget"
// @Router			/v1/budget/stats/{id} [get]
func GetBudgetStats(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetStatsResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	budget, err := models.BudgetForUser(models.DB, uri.ID.UUID, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatsResponse{Error: &e})
		return
	}

	stats, err := budget.Stats(models.DB, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetStatsResponse{Data: &stats})
}

// @Summary		Budget by category
// @Description	Returns the newest budget of the user for a category
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/budget/category/{id} [get]
func GetBudgetByCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	budget, err := models.BudgetByCategory(models.DB, uri.ID.UUID, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
