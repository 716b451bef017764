package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/utils"
)

type UserStore interface {
	Add(ctx context.Context, user models.NewUser, actor string) (models.CreateUserResponse, error)
	AssignRole(ctx context.Context, req models.UserRoleRequest, actor string) (models.UserRoleResponse, error)
	ListAll(ctx context.Context, isActive *bool) ([]models.UserDetails, error)
	FetchByID(ctx context.Context, id int) (*models.UserDetails, error)
	Update(ctx context.Context, changes models.UserChanges, actor string) (models.UpdateUserResponse, error)
	Delete(ctx context.Context, id int, actor string) (models.DeleteUserResponse, error)
	Login(ctx context.Context, email string) (models.UserCredentials, error)
	ToggleActive(ctx context.Context, id int, active bool, actor string) (models.UserToggleResponse, error)
}

const invalidCredentials = "Invalid email or password"

type UserController struct {
	Users UserStore
}

func NewUserController(store UserStore) *UserController {
	return &UserController{Users: store}
}

// POST /api/User/AddUser
func (c *UserController) AddUser(ctx *gin.Context) {
	var req models.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.CreateUserResponse](ctx, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fault[models.CreateUserResponse](ctx, "Registration Failed", err)
		return
	}

	result, err := c.Users.Add(ctx.Request.Context(), models.NewUser{Email: req.Email, PasswordHash: hash}, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.CreateUserResponse](ctx, "Registration Failed", err)
		return
	}
	if !result.IsCreated {
		utils.Failure[models.CreateUserResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// POST /api/User/AssignRole
func (c *UserController) AssignRole(ctx *gin.Context) {
	var req models.UserRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.UserRoleResponse](ctx, err)
		return
	}

	result, err := c.Users.AssignRole(ctx.Request.Context(), req, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.UserRoleResponse](ctx, "Role Assignment Failed", err)
		return
	}
	if !result.IsAssigned {
		utils.Failure[models.UserRoleResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// GET /api/User/AllUsers?isActive=
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	var query models.UserListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rejectInvalid[[]models.UserDetails](ctx, err)
		return
	}

	users, err := c.Users.ListAll(ctx.Request.Context(), query.IsActive)
	if err != nil {
		fault[[]models.UserDetails](ctx, "Internal Server Error", err)
		return
	}
	utils.Success(ctx, users, "Retrieved all Users Successfully.")
}

// GET /api/User/GetUser/:id
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := bindID[models.UserDetails](ctx)
	if !ok {
		return
	}

	user, err := c.Users.FetchByID(ctx.Request.Context(), id)
	if err != nil {
		fault[models.UserDetails](ctx, "Error fetching user", err)
		return
	}
	if user == nil {
		utils.Failure[models.UserDetails](ctx, http.StatusNotFound, fmt.Sprintf("User with Id %d not found", id))
		return
	}
	utils.Success(ctx, *user, "User Fetched successfully")
}

// PUT /api/User/Update/:id
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := bindID[models.UpdateUserResponse](ctx)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.UpdateUserResponse](ctx, err)
		return
	}
	if id != req.UserID {
		utils.Failure[models.UpdateUserResponse](ctx, http.StatusBadRequest, "Mismatched User ID.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fault[models.UpdateUserResponse](ctx, "Update Failed.", err)
		return
	}

	result, err := c.Users.Update(ctx.Request.Context(), models.UserChanges{
		UserID:       req.UserID,
		Email:        req.Email,
		PasswordHash: hash,
	}, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.UpdateUserResponse](ctx, "Update Failed.", err)
		return
	}
	if !result.IsUpdated {
		utils.Failure[models.UpdateUserResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}

// DELETE /api/User/Delete/:id
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := bindID[models.DeleteUserResponse](ctx)
	if !ok {
		return
	}

	result, err := c.Users.Delete(ctx.Request.Context(), id, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.DeleteUserResponse](ctx, "Internal server error", err)
		return
	}
	switch {
	case result.NotFound:
		utils.Failure[models.DeleteUserResponse](ctx, http.StatusNotFound, result.Message)
	case !result.IsDeleted:
		utils.Failure[models.DeleteUserResponse](ctx, http.StatusBadRequest, result.Message)
	default:
		utils.Success(ctx, result, result.Message)
	}
}

// POST /api/User/Login
func (c *UserController) LoginUser(ctx *gin.Context) {
	var req models.LoginUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rejectInvalid[models.LoginUserResponse](ctx, err)
		return
	}

	creds, err := c.Users.Login(ctx.Request.Context(), req.Email)
	if err != nil {
		fault[models.LoginUserResponse](ctx, "Login failed.", err)
		return
	}
	// unknown email and wrong password look the same to the caller
	if !creds.Found || !utils.CheckPassword(creds.PasswordHash, req.Password) {
		log.Printf("⚠️  failed login for %s", utils.MaskEmail(req.Email))
		utils.Failure[models.LoginUserResponse](ctx, http.StatusBadRequest, invalidCredentials)
		return
	}

	utils.Success(ctx, models.LoginUserResponse{
		UserID:  creds.UserID,
		IsLogin: true,
		Message: "Login Successful",
	}, "Login Successful")
}

// POST /api/User/ToggleActive?userId=&isActive=
func (c *UserController) ToggleUserActive(ctx *gin.Context) {
	var query models.UserToggleQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		rejectInvalid[models.UserToggleResponse](ctx, err)
		return
	}

	result, err := c.Users.ToggleActive(ctx.Request.Context(), query.UserID, *query.IsActive, middleware.ActorFrom(ctx))
	if err != nil {
		fault[models.UserToggleResponse](ctx, "Error updating user status", err)
		return
	}
	if !result.IsUpdated {
		utils.Failure[models.UserToggleResponse](ctx, http.StatusBadRequest, result.Message)
		return
	}
	utils.Success(ctx, result, result.Message)
}
