package models

import "time"

type UserDetails struct {
	UserID    int        `gorm:"column:UserID" json:"UserID"`
	RoleID    *int       `gorm:"column:RoleID" json:"RoleID"`
	Email     string     `gorm:"column:Email" json:"Email"`
	IsActive  bool       `gorm:"column:IsActive" json:"IsActive"`
	LastLogin *time.Time `gorm:"column:LastLogin" json:"LastLogin"`
}

type UserListQuery struct {
	IsActive *bool `form:"isActive"`
}

type CreateUserRequest struct {
	Email    string `json:"Email" binding:"required,email,max=100"`
	Password string `json:"Password" binding:"required,min=8,bcryptlen"`
}

// NewUser is what the store receives; the password is already hashed.
type NewUser struct {
	Email        string
	PasswordHash string
}

type CreateUserResponse struct {
	UserID    int    `json:"UserID"`
	IsCreated bool   `json:"IsCreated"`
	Message   string `json:"Message"`
}

type UserRoleRequest struct {
	UserID int `json:"UserID" binding:"required,gt=0"`
	RoleID int `json:"RoleID" binding:"required,gt=0"`
}

type UserRoleResponse struct {
	IsAssigned bool   `json:"IsAssigned"`
	Message    string `json:"Message"`
}

type UpdateUserRequest struct {
	UserID   int    `json:"UserID" binding:"required,gt=0"`
	Email    string `json:"Email" binding:"required,email,max=100"`
	Password string `json:"Password" binding:"required,min=8,bcryptlen"`
}

type UserChanges struct {
	UserID       int
	Email        string
	PasswordHash string
}

type UpdateUserResponse struct {
	UserID    int    `json:"UserID"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}

type DeleteUserResponse struct {
	UserID    int    `json:"UserID"`
	IsDeleted bool   `json:"IsDeleted"`
	NotFound  bool   `json:"-"`
	Message   string `json:"Message"`
}

type LoginUserRequest struct {
	Email    string `json:"Email" binding:"required,email"`
	Password string `json:"Password" binding:"required"`
}

// UserCredentials is what spLoginUser hands back for an email address.
type UserCredentials struct {
	UserID       int
	PasswordHash string
	Found        bool
	Message      string
}

type LoginUserResponse struct {
	UserID  int    `json:"UserID"`
	IsLogin bool   `json:"IsLogin"`
	Message string `json:"Message"`
}

type UserToggleQuery struct {
	UserID   int   `form:"userId" binding:"required,gt=0"`
	IsActive *bool `form:"isActive" binding:"required"`
}

type UserToggleResponse struct {
	UserID    int    `json:"UserID"`
	IsActive  bool   `json:"IsActive"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}
