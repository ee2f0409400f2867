package v1

import (
	"github.com/walletwise/backend/internal/models"
)

type UserEditable struct {
	Email    string `json:"email" example:"morre@example.com" binding:"required,email"` // Email address, must be unique
	Password string `json:"password" example:"correct horse battery staple" binding:"required"`
	Name     string `json:"name" example:"Morre" binding:"required"`
	Phone    string `json:"phone" example:"+57 1 2345678"`
	Photo    string `json:"photo" example:"https://example.com/morre.png"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"morre@example.com" binding:"required,email"`
	Password string `json:"password" example:"correct horse battery staple" binding:"required"`
}

// User is the API representation of a User. The password hash is never
// part of a response.
type User struct {
	models.DefaultModel
	Email string `json:"email" example:"morre@example.com"`
	Name  string `json:"name" example:"Morre"`
	Phone string `json:"phone" example:"+57 1 2345678"`
	Photo string `json:"photo" example:"https://example.com/morre.png"`
}

// newUser returns the API representation of the resource
func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Name:         model.Name,
		Phone:        model.Phone,
		Photo:        model.Photo,
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"email already in use"` // The error, if any occurred
	Data  *User   `json:"data"`                                 // The user data, if the request was successful
}

type LoginResponse struct {
	Error *string `json:"error" example:"invalid email or password"` // The error, if any occurred
	Data  *Token  `json:"data"`                                      // The token, if the login succeeded
}

type Token struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
}
