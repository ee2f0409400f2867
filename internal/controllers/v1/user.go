package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/walletwise/backend/internal/auth"
	"github.com/walletwise/backend/internal/httputil"
	"github.com/walletwise/backend/internal/models"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
//
// Registration and login do not require authentication, the other
// routes do.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsUserRegister)
	r.POST("/register", RegisterUser)
	r.OPTIONS("/login", OptionsUserLogin)
	r.POST("/login", LoginUser)

	r.OPTIONS("/me", OptionsUserMe)
	r.GET("/me", auth.Middleware(), GetActiveUser)
	r.OPTIONS("", OptionsUser)
	r.DELETE("", auth.Middleware(), DeleteUser)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/user/register [options]
func OptionsUserRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/user/login [options]
func OptionsUserLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/user/me [options]
func OptionsUserMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/user [options]
func OptionsUser(c *gin.Context) {
	c.Header("allow", "DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Register user
// @Description	Creates a new user. The email address must be unique.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/user/register [post]
func RegisterUser(c *gin.Context) {
	var editable UserEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{Error: &e})
		return
	}

	user, err := models.CreateUser(models.DB, models.User{
		Email:    editable.Email,
		Password: hash,
		Name:     editable.Name,
		Phone:    editable.Phone,
		Photo:    editable.Photo,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a bearer token carrying the user and wallet IDs
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/user/login [post]
func LoginUser(c *gin.Context) {
	var login LoginRequest
	err := httputil.BindData(c, &login)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	user, err := models.UserByEmail(models.DB, login.Email)
	if err != nil || !auth.CheckPassword(user.Password, login.Password) {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{Error: &e})
		return
	}

	// A user without a wallet gets a token with a nil wallet ID and
	// has to log in again after creating their wallet
	walletID := uuid.Nil
	wallet, err := models.WalletForUser(models.DB, user.ID)
	if err == nil {
		walletID = wallet.ID
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	token, err := auth.NewToken(auth.Identity{UserID: user.ID, WalletID: walletID})
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &Token{Token: token}})
}

// @Summary		Get active user
// @Description	Returns the user the token belongs to
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/user/me [get]
func GetActiveUser(c *gin.Context) {
	identity := auth.ActiveIdentity(c)

	user, err := models.UserByID(models.DB, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Delete user
// @Description	Deletes the user. Users that still own a wallet, budgets, categories or transactions cannot be deleted.
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/user [delete]
func DeleteUser(c *gin.Context) {
	identity := auth.ActiveIdentity(c)

	err := models.DeleteUser(models.DB, identity.UserID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
