package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"gorm.io/gorm"

	"hotel-booking-api/models"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func getUserByIDCall(id int) Call {
	return Call{
		Procedure: "spGetUserByID",
		In:        []Param{{"UserID", id}},
		Out:       []string{"ErrorMessage"},
	}
}

type addUserOut struct {
	UserID       sql.NullInt64  `gorm:"column:UserID"`
	ErrorMessage sql.NullString `gorm:"column:ErrorMessage"`
}

// Add registers a user. user.PasswordHash must already be hashed.
func (r *UserRepository) Add(ctx context.Context, user models.NewUser, actor string) (models.CreateUserResponse, error) {
	var out addUserOut
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spAddUser",
			In: []Param{
				{"Email", user.Email},
				{"PasswordHash", user.PasswordHash},
				{"CreatedBy", actor},
			},
			Out: []string{"UserID", "ErrorMessage"},
		}, &out)
	})
	if err != nil {
		return models.CreateUserResponse{}, fmt.Errorf("add user: %w", err)
	}

	status := userStatus{ErrorMessage: out.ErrorMessage}
	if !status.ok() {
		return models.CreateUserResponse{Message: out.ErrorMessage.String}, nil
	}
	return models.CreateUserResponse{
		UserID:    int(out.UserID.Int64),
		IsCreated: true,
		Message:   "User Created Successfully.",
	}, nil
}

func (r *UserRepository) AssignRole(ctx context.Context, req models.UserRoleRequest, actor string) (models.UserRoleResponse, error) {
	var out userStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spAssignUserRole",
			In: []Param{
				{"UserID", req.UserID},
				{"RoleID", req.RoleID},
			},
			Out: []string{"ErrorMessage"},
		}, &out)
	})
	if err != nil {
		return models.UserRoleResponse{}, fmt.Errorf("assign role %d to user %d: %w", req.RoleID, req.UserID, err)
	}
	if !out.ok() {
		return models.UserRoleResponse{Message: out.ErrorMessage.String}, nil
	}
	log.Printf("role %d assigned to user %d by %s", req.RoleID, req.UserID, actor)
	return models.UserRoleResponse{IsAssigned: true, Message: "User Role Assigned Successfully."}, nil
}

func (r *UserRepository) ListAll(ctx context.Context, isActive *bool) ([]models.UserDetails, error) {
	var users []models.UserDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var err error
		users, err = queryProc[models.UserDetails](tx, Call{
			Procedure: "spListAllUsers",
			In:        []Param{{"IsActive", nullBool(isActive)}},
		}, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FetchByID returns nil when the user does not exist.
func (r *UserRepository) FetchByID(ctx context.Context, id int) (*models.UserDetails, error) {
	var found []models.UserDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var out userStatus
		var err error
		found, err = queryProc[models.UserDetails](tx, getUserByIDCall(id), &out)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch user %d: %w", id, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// Update changes the user's email and password. changes.PasswordHash must
// already be hashed.
func (r *UserRepository) Update(ctx context.Context, changes models.UserChanges, actor string) (models.UpdateUserResponse, error) {
	var out userStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spUpdateUserInformation",
			In: []Param{
				{"UserID", changes.UserID},
				{"Email", changes.Email},
				{"PasswordHash", changes.PasswordHash},
				{"ModifiedBy", actor},
			},
			Out: []string{"ErrorMessage"},
		}, &out)
	})
	if err != nil {
		return models.UpdateUserResponse{}, fmt.Errorf("update user %d: %w", changes.UserID, err)
	}
	if !out.ok() {
		return models.UpdateUserResponse{UserID: changes.UserID, Message: out.ErrorMessage.String}, nil
	}
	return models.UpdateUserResponse{
		UserID:    changes.UserID,
		IsUpdated: true,
		Message:   "User Updated Successfully.",
	}, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int, actor string) (models.DeleteUserResponse, error) {
	result := models.DeleteUserResponse{UserID: id}
	err := r.db.withTx(ctx, func(tx *gorm.DB) error {
		var lookup userStatus
		found, err := queryProc[models.UserDetails](tx, getUserByIDCall(id), &lookup)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			result.NotFound = true
			result.Message = "User not found."
			return nil
		}

		var out userStatus
		if err := execProc(tx, Call{
			Procedure: "spDeleteUser",
			In:        []Param{{"UserID", id}},
			Out:       []string{"ErrorMessage"},
		}, &out); err != nil {
			return err
		}
		if !out.ok() {
			result.Message = out.ErrorMessage.String
			return nil
		}
		result.IsDeleted = true
		result.Message = "User Deleted Successfully."
		return nil
	})
	if err != nil {
		return models.DeleteUserResponse{}, fmt.Errorf("delete user %d: %w", id, err)
	}
	if result.IsDeleted {
		log.Printf("user %d deleted by %s", id, actor)
	}
	return result, nil
}

type loginOut struct {
	UserID       sql.NullInt64  `gorm:"column:UserID"`
	PasswordHash sql.NullString `gorm:"column:PasswordHash"`
	ErrorMessage sql.NullString `gorm:"column:ErrorMessage"`
}

// Login looks up the stored credentials for email. The password itself is
// checked by the caller; the store never sees it.
func (r *UserRepository) Login(ctx context.Context, email string) (models.UserCredentials, error) {
	var out loginOut
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spLoginUser",
			In:        []Param{{"Email", email}},
			Out:       []string{"UserID", "PasswordHash", "ErrorMessage"},
		}, &out)
	})
	if err != nil {
		return models.UserCredentials{}, fmt.Errorf("login lookup: %w", err)
	}

	status := userStatus{ErrorMessage: out.ErrorMessage}
	if !status.ok() || !out.UserID.Valid || !out.PasswordHash.Valid {
		return models.UserCredentials{Message: messageOr(out.ErrorMessage, "Invalid email or password")}, nil
	}
	return models.UserCredentials{
		UserID:       int(out.UserID.Int64),
		PasswordHash: out.PasswordHash.String,
		Found:        true,
	}, nil
}

func (r *UserRepository) ToggleActive(ctx context.Context, id int, active bool, actor string) (models.UserToggleResponse, error) {
	var out userStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spToggleUserActive",
			In: []Param{
				{"UserID", id},
				{"IsActive", active},
			},
			Out: []string{"ErrorMessage"},
		}, &out)
	})
	if err != nil {
		return models.UserToggleResponse{}, fmt.Errorf("toggle user %d: %w", id, err)
	}

	result := models.UserToggleResponse{UserID: id, IsActive: active}
	if !out.ok() {
		result.Message = out.ErrorMessage.String
		return result, nil
	}
	log.Printf("user %d set active=%t by %s", id, active, actor)
	result.IsUpdated = true
	result.Message = "User activation status updated successfully."
	return result, nil
}
