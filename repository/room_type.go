package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"gorm.io/gorm"

	"hotel-booking-api/models"
)

type RoomTypeRepository struct {
	db *DB
}

func NewRoomTypeRepository(db *DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func getRoomTypeByIDCall(id int) Call {
	return Call{
		Procedure: "spGetRoomTypeById",
		In:        []Param{{"RoomTypeID", id}},
	}
}

func (r *RoomTypeRepository) FetchAll(ctx context.Context, isActive *bool) ([]models.RoomTypeDetails, error) {
	var types []models.RoomTypeDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var err error
		types, err = queryProc[models.RoomTypeDetails](tx, Call{
			Procedure: "spGetAllRoomTypes",
			In:        []Param{{"IsActive", nullBool(isActive)}},
		}, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch room types: %w", err)
	}
	return types, nil
}

func (r *RoomTypeRepository) FetchByID(ctx context.Context, id int) (*models.RoomTypeDetails, error) {
	var found []models.RoomTypeDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var err error
		found, err = queryProc[models.RoomTypeDetails](tx, getRoomTypeByIDCall(id), nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch room type %d: %w", id, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

type createRoomTypeOut struct {
	NewRoomTypeID sql.NullInt64  `gorm:"column:NewRoomTypeID"`
	StatusCode    sql.NullInt64  `gorm:"column:StatusCode"`
	Message       sql.NullString `gorm:"column:Message"`
}

func (r *RoomTypeRepository) Create(ctx context.Context, req models.CreateRoomTypeRequest, actor string) (models.CreateRoomTypeResponse, error) {
	var out createRoomTypeOut
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spCreateRoomType",
			In: []Param{
				{"TypeName", req.TypeName},
				{"AccessibilityFeatures", req.AccessibilityFeatures},
				{"Description", req.Description},
				{"CreatedBy", actor},
			},
			Out: []string{"NewRoomTypeID", "StatusCode", "Message"},
		}, &out)
	})
	if err != nil {
		return models.CreateRoomTypeResponse{}, fmt.Errorf("create room type: %w", err)
	}

	status := roomStatus{StatusCode: out.StatusCode, Message: out.Message}
	if !status.ok() {
		return models.CreateRoomTypeResponse{
			Message: messageOr(out.Message, "Room type could not be created"),
		}, nil
	}
	return models.CreateRoomTypeResponse{
		RoomTypeID: int(out.NewRoomTypeID.Int64),
		IsCreated:  true,
		Message:    messageOr(out.Message, "Room type created successfully"),
	}, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, req models.UpdateRoomTypeRequest, actor string) (models.UpdateRoomTypeResponse, error) {
	var out roomStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spUpdateRoomType",
			In: []Param{
				{"RoomTypeID", req.RoomTypeID},
				{"TypeName", req.TypeName},
				{"AccessibilityFeatures", req.AccessibilityFeatures},
				{"Description", req.Description},
				{"ModifiedBy", actor},
			},
			Out: []string{"StatusCode", "Message"},
		}, &out)
	})
	if err != nil {
		return models.UpdateRoomTypeResponse{}, fmt.Errorf("update room type %d: %w", req.RoomTypeID, err)
	}
	return models.UpdateRoomTypeResponse{
		RoomTypeID: req.RoomTypeID,
		IsUpdated:  out.ok(),
		Message:    messageOr(out.Message, "Room type could not be updated"),
	}, nil
}

// ToggleActive sets the active flag. Setting it to its current value is not
// an error.
func (r *RoomTypeRepository) ToggleActive(ctx context.Context, id int, active bool, actor string) (models.RoomTypeToggleResponse, error) {
	var out roomStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spToggleRoomTypeActive",
			In: []Param{
				{"RoomTypeID", id},
				{"IsActive", active},
			},
			Out: []string{"StatusCode", "Message"},
		}, &out)
	})
	if err != nil {
		return models.RoomTypeToggleResponse{}, fmt.Errorf("toggle room type %d: %w", id, err)
	}

	result := models.RoomTypeToggleResponse{
		RoomTypeID: id,
		IsActive:   active,
		IsUpdated:  out.ok(),
		Message:    messageOr(out.Message, "Room type status could not be changed"),
	}
	if result.IsUpdated {
		log.Printf("room type %d set active=%t by %s", id, active, actor)
	}
	return result, nil
}

// Deactivate is the soft delete: the row stays and is flagged inactive.
func (r *RoomTypeRepository) Deactivate(ctx context.Context, id int, actor string) (models.RoomTypeToggleResponse, error) {
	return r.ToggleActive(ctx, id, false, actor)
}

// HardDelete removes the room type row if it exists.
func (r *RoomTypeRepository) HardDelete(ctx context.Context, id int, actor string) (models.DeleteRoomTypeResponse, error) {
	result := models.DeleteRoomTypeResponse{RoomTypeID: id}
	err := r.db.withTx(ctx, func(tx *gorm.DB) error {
		found, err := queryProc[models.RoomTypeDetails](tx, getRoomTypeByIDCall(id), nil)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			result.NotFound = true
			result.Message = fmt.Sprintf("Room type with Id %d is not found", id)
			return nil
		}

		var out roomStatus
		if err := execProc(tx, Call{
			Procedure: "spDeleteRoomType",
			In:        []Param{{"RoomTypeID", id}},
			Out:       []string{"StatusCode", "Message"},
		}, &out); err != nil {
			return err
		}
		result.IsDeleted = out.ok()
		result.Message = messageOr(out.Message, "Room type could not be deleted")
		return nil
	})
	if err != nil {
		return models.DeleteRoomTypeResponse{}, fmt.Errorf("delete room type %d: %w", id, err)
	}
	if result.IsDeleted {
		log.Printf("room type %d deleted by %s", id, actor)
	}
	return result, nil
}
