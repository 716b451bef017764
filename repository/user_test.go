package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking-api/models"
)

var userColumns = []string{"UserID", "RoleID", "Email", "IsActive", "LastLogin"}

func TestUserRepository_Add(t *testing.T) {
	testCases := []struct {
		name   string
		userID any
		errMsg any
		want   models.CreateUserResponse
	}{
		{
			name:   "created",
			userID: 12,
			errMsg: nil,
			want:   models.CreateUserResponse{UserID: 12, IsCreated: true, Message: "User Created Successfully."},
		},
		{
			name:   "email taken",
			userID: nil,
			errMsg: "Email already registered",
			want:   models.CreateUserResponse{Message: "Email already registered"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTestDB(t)

			mock.ExpectExec(q("SET @UserID = NULL, @ErrorMessage = NULL")).WillReturnResult(noResult())
			mock.ExpectExec(q("CALL spAddUser(?, ?, ?, @UserID, @ErrorMessage)")).
				WithArgs("guest@example.com", "$2a$10$hash", "admin").
				WillReturnResult(noResult())
			mock.ExpectQuery(q("SELECT @UserID AS UserID, @ErrorMessage AS ErrorMessage")).
				WillReturnRows(sqlmock.NewRows([]string{"UserID", "ErrorMessage"}).AddRow(tc.userID, tc.errMsg))

			got, err := NewUserRepository(db).Add(context.Background(), models.NewUser{
				Email:        "guest@example.com",
				PasswordHash: "$2a$10$hash",
			}, "admin")

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_AssignRole(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
	mock.ExpectExec(q("CALL spAssignUserRole(?, ?, @ErrorMessage)")).WithArgs(12, 2).WillReturnResult(noResult())
	mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
		WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow(nil))

	got, err := NewUserRepository(db).AssignRole(context.Background(), models.UserRoleRequest{UserID: 12, RoleID: 2}, "admin")

	require.NoError(t, err)
	assert.True(t, got.IsAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListAll(t *testing.T) {
	db, mock := newTestDB(t)
	lastLogin := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(q("CALL spListAllUsers(?)")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, 2, "a@example.com", false, lastLogin).
			AddRow(2, nil, "b@example.com", false, nil))

	inactive := false
	users, err := NewUserRepository(db).ListAll(context.Background(), &inactive)

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[0].RoleID)
	assert.Equal(t, 2, *users[0].RoleID)
	require.NotNil(t, users[0].LastLogin)
	assert.True(t, lastLogin.Equal(*users[0].LastLogin))
	assert.Nil(t, users[1].RoleID)
	assert.Nil(t, users[1].LastLogin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FetchByIDAbsent(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
	mock.ExpectQuery(q("CALL spGetUserByID(?, @ErrorMessage)")).WithArgs(77).WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
		WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow("User not found"))

	got, err := NewUserRepository(db).FetchByID(context.Background(), 77)

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
	mock.ExpectExec(q("CALL spUpdateUserInformation(?, ?, ?, ?, @ErrorMessage)")).
		WithArgs(12, "new@example.com", "$2a$10$other", "12").
		WillReturnResult(noResult())
	mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
		WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow(""))

	got, err := NewUserRepository(db).Update(context.Background(), models.UserChanges{
		UserID: 12, Email: "new@example.com", PasswordHash: "$2a$10$other",
	}, "12")

	require.NoError(t, err)
	assert.Equal(t, models.UpdateUserResponse{UserID: 12, IsUpdated: true, Message: "User Updated Successfully."}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
		mock.ExpectQuery(q("CALL spGetUserByID(?, @ErrorMessage)")).
			WithArgs(12).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(12, 1, "a@example.com", true, nil))
		mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
			WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow(nil))
		mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
		mock.ExpectExec(q("CALL spDeleteUser(?, @ErrorMessage)")).WithArgs(12).WillReturnResult(noResult())
		mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
			WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow(nil))
		mock.ExpectCommit()

		got, err := NewUserRepository(db).Delete(context.Background(), 12, "admin")

		require.NoError(t, err)
		assert.Equal(t, models.DeleteUserResponse{UserID: 12, IsDeleted: true, Message: "User Deleted Successfully."}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
		mock.ExpectQuery(q("CALL spGetUserByID(?, @ErrorMessage)")).WithArgs(13).WillReturnRows(sqlmock.NewRows(userColumns))
		mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
			WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow("User not found"))
		mock.ExpectCommit()

		got, err := NewUserRepository(db).Delete(context.Background(), 13, "admin")

		require.NoError(t, err)
		assert.True(t, got.NotFound)
		assert.False(t, got.IsDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Login(t *testing.T) {
	t.Run("known email returns stored hash", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectExec(q("SET @UserID = NULL, @PasswordHash = NULL, @ErrorMessage = NULL")).WillReturnResult(noResult())
		mock.ExpectExec(q("CALL spLoginUser(?, @UserID, @PasswordHash, @ErrorMessage)")).
			WithArgs("a@example.com").
			WillReturnResult(noResult())
		mock.ExpectQuery(q("SELECT @UserID AS UserID, @PasswordHash AS PasswordHash, @ErrorMessage AS ErrorMessage")).
			WillReturnRows(sqlmock.NewRows([]string{"UserID", "PasswordHash", "ErrorMessage"}).AddRow(12, "$2a$10$hash", nil))

		got, err := NewUserRepository(db).Login(context.Background(), "a@example.com")

		require.NoError(t, err)
		assert.Equal(t, models.UserCredentials{UserID: 12, PasswordHash: "$2a$10$hash", Found: true}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectExec(q("SET @UserID = NULL, @PasswordHash = NULL, @ErrorMessage = NULL")).WillReturnResult(noResult())
		mock.ExpectExec(q("CALL spLoginUser(?, @UserID, @PasswordHash, @ErrorMessage)")).
			WithArgs("nobody@example.com").
			WillReturnResult(noResult())
		mock.ExpectQuery(q("SELECT @UserID AS UserID, @PasswordHash AS PasswordHash, @ErrorMessage AS ErrorMessage")).
			WillReturnRows(sqlmock.NewRows([]string{"UserID", "PasswordHash", "ErrorMessage"}).AddRow(nil, nil, "User not found"))

		got, err := NewUserRepository(db).Login(context.Background(), "nobody@example.com")

		require.NoError(t, err)
		assert.False(t, got.Found)
		assert.Equal(t, "User not found", got.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ToggleActive(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(q("SET @ErrorMessage = NULL")).WillReturnResult(noResult())
	mock.ExpectExec(q("CALL spToggleUserActive(?, ?, @ErrorMessage)")).WithArgs(12, false).WillReturnResult(noResult())
	mock.ExpectQuery(q("SELECT @ErrorMessage AS ErrorMessage")).
		WillReturnRows(sqlmock.NewRows([]string{"ErrorMessage"}).AddRow(nil))

	got, err := NewUserRepository(db).ToggleActive(context.Background(), 12, false, "admin")

	require.NoError(t, err)
	assert.True(t, got.IsUpdated)
	assert.False(t, got.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
