package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
)

// envelope mirrors models.APIResponse for decoding in tests.
type envelope[T any] struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Data    *T      `json:"data"`
	Detail  *string `json:"detail"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Actor("System"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func boolPtr(b bool) *bool { return &b }

// fakeAmenities is an in-memory AmenityStore.
type fakeAmenities struct {
	rows   map[int]models.AmenityDetails
	nextID int
	err    error
	calls  int
	actors []string
}

func newFakeAmenities() *fakeAmenities {
	return &fakeAmenities{rows: map[int]models.AmenityDetails{}, nextID: 1}
}

func (f *fakeAmenities) FetchAll(_ context.Context, isActive *bool) (models.AmenityFetchResult, error) {
	f.calls++
	if f.err != nil {
		return models.AmenityFetchResult{}, f.err
	}
	out := make([]models.AmenityDetails, 0, len(f.rows))
	for id := 1; id < f.nextID; id++ {
		row, ok := f.rows[id]
		if !ok || (isActive != nil && row.IsActive != *isActive) {
			continue
		}
		out = append(out, row)
	}
	return models.AmenityFetchResult{Amenities: out, IsSuccess: true, Message: "ok"}, nil
}

func (f *fakeAmenities) FetchByID(_ context.Context, id int) (*models.AmenityDetails, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeAmenities) Insert(_ context.Context, p models.AmenityInsert, actor string) (models.AmenityInsertResult, error) {
	f.calls++
	f.actors = append(f.actors, actor)
	if f.err != nil {
		return models.AmenityInsertResult{}, f.err
	}
	for _, row := range f.rows {
		if row.Name == p.Name {
			return models.AmenityInsertResult{Message: "Amenity already exists"}, nil
		}
	}
	id := f.nextID
	f.nextID++
	f.rows[id] = models.AmenityDetails{AmenityID: id, Name: p.Name, Description: p.Description, IsActive: true}
	return models.AmenityInsertResult{AmenityID: id, IsCreated: true, Message: "Amenity created"}, nil
}

func (f *fakeAmenities) Update(_ context.Context, p models.AmenityUpdate, actor string) (models.AmenityUpdateResult, error) {
	f.calls++
	f.actors = append(f.actors, actor)
	if _, ok := f.rows[p.AmenityID]; !ok {
		return models.AmenityUpdateResult{AmenityID: p.AmenityID, Message: "Amenity does not exist"}, nil
	}
	f.rows[p.AmenityID] = models.AmenityDetails{AmenityID: p.AmenityID, Name: p.Name, Description: p.Description, IsActive: *p.IsActive}
	return models.AmenityUpdateResult{AmenityID: p.AmenityID, IsUpdated: true, Message: "Amenity updated"}, nil
}

func (f *fakeAmenities) Delete(_ context.Context, id int, actor string) (models.AmenityDeleteResult, error) {
	f.calls++
	f.actors = append(f.actors, actor)
	if f.err != nil {
		return models.AmenityDeleteResult{}, f.err
	}
	if _, ok := f.rows[id]; !ok {
		return models.AmenityDeleteResult{AmenityID: id, NotFound: true, Message: "Amenity not found"}, nil
	}
	delete(f.rows, id)
	return models.AmenityDeleteResult{AmenityID: id, IsDeleted: true, Message: "Amenity deleted"}, nil
}

func (f *fakeAmenities) BulkInsert(ctx context.Context, items []models.AmenityInsert, actor string) (models.AmenityBulkResult, error) {
	for _, it := range items {
		if _, err := f.Insert(ctx, it, actor); err != nil {
			return models.AmenityBulkResult{}, err
		}
	}
	return models.AmenityBulkResult{Count: len(items), IsSuccess: true, Message: "Amenities inserted"}, nil
}

// fakeRooms records the filter it was called with.
type fakeRooms struct {
	rooms      []models.RoomDetails
	calls      int
	lastType   *int
	lastStatus string
	deleteResp models.DeleteRoomResponse
	createResp models.CreateRoomResponse
	err        error
}

func (f *fakeRooms) FetchAll(_ context.Context, roomTypeID *int, status string) ([]models.RoomDetails, error) {
	f.calls++
	f.lastType, f.lastStatus = roomTypeID, status
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.RoomDetails, 0, len(f.rooms))
	for _, r := range f.rooms {
		if status != "" && status != models.RoomStatusAll && r.Status != status {
			continue
		}
		if roomTypeID != nil && r.RoomTypeID != *roomTypeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRooms) FetchByID(_ context.Context, id int) (*models.RoomDetails, error) {
	f.calls++
	for _, r := range f.rooms {
		if r.RoomID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRooms) Create(_ context.Context, _ models.CreateRoomRequest, _ string) (models.CreateRoomResponse, error) {
	f.calls++
	return f.createResp, f.err
}

func (f *fakeRooms) Update(_ context.Context, req models.UpdateRoomRequest, _ string) (models.UpdateRoomResponse, error) {
	f.calls++
	return models.UpdateRoomResponse{RoomID: req.RoomID, IsUpdated: true, Message: "Room updated"}, f.err
}

func (f *fakeRooms) Delete(_ context.Context, _ int, _ string) (models.DeleteRoomResponse, error) {
	f.calls++
	return f.deleteResp, f.err
}

// fakeRoomTypes keeps an active flag per id.
type fakeRoomTypes struct {
	active     map[int]bool
	calls      int
	hardDelete int
	err        error
}

func (f *fakeRoomTypes) FetchAll(_ context.Context, _ *bool) ([]models.RoomTypeDetails, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeRoomTypes) FetchByID(_ context.Context, id int) (*models.RoomTypeDetails, error) {
	f.calls++
	if active, ok := f.active[id]; ok {
		return &models.RoomTypeDetails{RoomTypeID: id, TypeName: "Suite", IsActive: active}, nil
	}
	return nil, f.err
}

func (f *fakeRoomTypes) Create(_ context.Context, _ models.CreateRoomTypeRequest, _ string) (models.CreateRoomTypeResponse, error) {
	f.calls++
	return models.CreateRoomTypeResponse{RoomTypeID: 9, IsCreated: true, Message: "Room type created"}, f.err
}

func (f *fakeRoomTypes) Update(_ context.Context, req models.UpdateRoomTypeRequest, _ string) (models.UpdateRoomTypeResponse, error) {
	f.calls++
	return models.UpdateRoomTypeResponse{RoomTypeID: req.RoomTypeID, IsUpdated: true, Message: "Room type updated"}, f.err
}

func (f *fakeRoomTypes) ToggleActive(_ context.Context, id int, active bool, _ string) (models.RoomTypeToggleResponse, error) {
	f.calls++
	if f.err != nil {
		return models.RoomTypeToggleResponse{}, f.err
	}
	if _, ok := f.active[id]; !ok {
		return models.RoomTypeToggleResponse{RoomTypeID: id, Message: "Room type not found"}, nil
	}
	f.active[id] = active
	return models.RoomTypeToggleResponse{RoomTypeID: id, IsActive: active, IsUpdated: true, Message: "Room type status updated"}, nil
}

func (f *fakeRoomTypes) Deactivate(ctx context.Context, id int, actor string) (models.RoomTypeToggleResponse, error) {
	return f.ToggleActive(ctx, id, false, actor)
}

func (f *fakeRoomTypes) HardDelete(_ context.Context, id int, _ string) (models.DeleteRoomTypeResponse, error) {
	f.calls++
	f.hardDelete++
	if _, ok := f.active[id]; !ok {
		return models.DeleteRoomTypeResponse{RoomTypeID: id, NotFound: true, Message: "Room type not found"}, nil
	}
	delete(f.active, id)
	return models.DeleteRoomTypeResponse{RoomTypeID: id, IsDeleted: true, Message: "Room type deleted"}, nil
}

// fakeUsers stores password hashes by email.
type fakeUsers struct {
	hashes map[string]string
	ids    map[string]int
	calls  int
	added  []models.NewUser
	err    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{hashes: map[string]string{}, ids: map[string]int{}}
}

func (f *fakeUsers) Add(_ context.Context, u models.NewUser, _ string) (models.CreateUserResponse, error) {
	f.calls++
	if f.err != nil {
		return models.CreateUserResponse{}, f.err
	}
	if _, ok := f.hashes[u.Email]; ok {
		return models.CreateUserResponse{Message: "Email already registered"}, nil
	}
	f.added = append(f.added, u)
	id := len(f.hashes) + 1
	f.hashes[u.Email] = u.PasswordHash
	f.ids[u.Email] = id
	return models.CreateUserResponse{UserID: id, IsCreated: true, Message: "User Created Successfully."}, nil
}

func (f *fakeUsers) AssignRole(_ context.Context, _ models.UserRoleRequest, _ string) (models.UserRoleResponse, error) {
	f.calls++
	return models.UserRoleResponse{IsAssigned: true, Message: "User Role Assigned Successfully."}, f.err
}

func (f *fakeUsers) ListAll(_ context.Context, _ *bool) ([]models.UserDetails, error) {
	f.calls++
	return []models.UserDetails{}, f.err
}

func (f *fakeUsers) FetchByID(_ context.Context, id int) (*models.UserDetails, error) {
	f.calls++
	for email, uid := range f.ids {
		if uid == id {
			return &models.UserDetails{UserID: id, Email: email, IsActive: true}, nil
		}
	}
	return nil, f.err
}

func (f *fakeUsers) Update(_ context.Context, ch models.UserChanges, _ string) (models.UpdateUserResponse, error) {
	f.calls++
	return models.UpdateUserResponse{UserID: ch.UserID, IsUpdated: true, Message: "User Updated Successfully."}, f.err
}

func (f *fakeUsers) Delete(_ context.Context, id int, _ string) (models.DeleteUserResponse, error) {
	f.calls++
	for email, uid := range f.ids {
		if uid == id {
			delete(f.ids, email)
			delete(f.hashes, email)
			return models.DeleteUserResponse{UserID: id, IsDeleted: true, Message: "User Deleted Successfully."}, nil
		}
	}
	return models.DeleteUserResponse{UserID: id, NotFound: true, Message: "User not found."}, f.err
}

func (f *fakeUsers) Login(_ context.Context, email string) (models.UserCredentials, error) {
	f.calls++
	if f.err != nil {
		return models.UserCredentials{}, f.err
	}
	hash, ok := f.hashes[email]
	if !ok {
		return models.UserCredentials{Message: "User not found"}, nil
	}
	return models.UserCredentials{UserID: f.ids[email], PasswordHash: hash, Found: true}, nil
}

func (f *fakeUsers) ToggleActive(_ context.Context, id int, active bool, _ string) (models.UserToggleResponse, error) {
	f.calls++
	return models.UserToggleResponse{UserID: id, IsActive: active, IsUpdated: true, Message: "User activation status updated successfully."}, f.err
}
