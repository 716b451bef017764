package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"gorm.io/gorm"

	"hotel-booking-api/models"
)

type RoomRepository struct {
	db *DB
}

func NewRoomRepository(db *DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func getRoomByIDCall(id int) Call {
	return Call{
		Procedure: "spGetRoomById",
		In:        []Param{{"RoomID", id}},
	}
}

// FetchAll lists rooms. A nil roomTypeID and a status of "" or "All" do not
// filter.
func (r *RoomRepository) FetchAll(ctx context.Context, roomTypeID *int, status string) ([]models.RoomDetails, error) {
	if status == models.RoomStatusAll {
		status = ""
	}

	var rooms []models.RoomDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var err error
		rooms, err = queryProc[models.RoomDetails](tx, Call{
			Procedure: "spGetAllRoom",
			In: []Param{
				{"RoomTypeID", nullInt(roomTypeID)},
				{"Status", nullString(status)},
			},
		}, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) FetchByID(ctx context.Context, id int) (*models.RoomDetails, error) {
	var found []models.RoomDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var err error
		found, err = queryProc[models.RoomDetails](tx, getRoomByIDCall(id), nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch room %d: %w", id, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

type createRoomOut struct {
	NewRoomID  sql.NullInt64  `gorm:"column:NewRoomID"`
	StatusCode sql.NullInt64  `gorm:"column:StatusCode"`
	Message    sql.NullString `gorm:"column:Message"`
}

func (r *RoomRepository) Create(ctx context.Context, req models.CreateRoomRequest, actor string) (models.CreateRoomResponse, error) {
	var out createRoomOut
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spCreateRoom",
			In: []Param{
				{"RoomNumber", req.RoomNumber},
				{"RoomTypeID", req.RoomTypeID},
				{"Price", req.Price},
				{"BedType", req.BedType},
				{"ViewType", req.ViewType},
				{"Status", req.Status},
				{"IsActive", nullBool(req.IsActive)},
				{"CreatedBy", actor},
			},
			Out: []string{"NewRoomID", "StatusCode", "Message"},
		}, &out)
	})
	if err != nil {
		return models.CreateRoomResponse{}, fmt.Errorf("create room: %w", err)
	}

	status := roomStatus{StatusCode: out.StatusCode, Message: out.Message}
	if !status.ok() {
		return models.CreateRoomResponse{
			Message: messageOr(out.Message, "Room could not be created"),
		}, nil
	}
	return models.CreateRoomResponse{
		RoomID:    int(out.NewRoomID.Int64),
		IsCreated: true,
		Message:   messageOr(out.Message, "Room created successfully"),
	}, nil
}

func (r *RoomRepository) Update(ctx context.Context, req models.UpdateRoomRequest, actor string) (models.UpdateRoomResponse, error) {
	var out roomStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spUpdateRoom",
			In: []Param{
				{"RoomID", req.RoomID},
				{"RoomNumber", req.RoomNumber},
				{"RoomTypeID", req.RoomTypeID},
				{"Price", req.Price},
				{"BedType", req.BedType},
				{"ViewType", req.ViewType},
				{"Status", req.Status},
				{"IsActive", nullBool(req.IsActive)},
				{"ModifiedBy", actor},
			},
			Out: []string{"StatusCode", "Message"},
		}, &out)
	})
	if err != nil {
		return models.UpdateRoomResponse{}, fmt.Errorf("update room %d: %w", req.RoomID, err)
	}
	return models.UpdateRoomResponse{
		RoomID:    req.RoomID,
		IsUpdated: out.ok(),
		Message:   messageOr(out.Message, "Room could not be updated"),
	}, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int, actor string) (models.DeleteRoomResponse, error) {
	result := models.DeleteRoomResponse{RoomID: id}
	err := r.db.withTx(ctx, func(tx *gorm.DB) error {
		found, err := queryProc[models.RoomDetails](tx, getRoomByIDCall(id), nil)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			result.NotFound = true
			result.Message = fmt.Sprintf("Room with Id %d is not found", id)
			return nil
		}

		var out roomStatus
		if err := execProc(tx, Call{
			Procedure: "spDeleteRoom",
			In:        []Param{{"RoomID", id}},
			Out:       []string{"StatusCode", "Message"},
		}, &out); err != nil {
			return err
		}
		result.IsDeleted = out.ok()
		result.Message = messageOr(out.Message, "Room could not be deleted")
		return nil
	})
	if err != nil {
		return models.DeleteRoomResponse{}, fmt.Errorf("delete room %d: %w", id, err)
	}
	if result.IsDeleted {
		log.Printf("room %d deleted by %s", id, actor)
	}
	return result, nil
}
