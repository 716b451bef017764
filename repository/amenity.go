package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking-api/models"
)

type AmenityRepository struct {
	db *DB
}

func NewAmenityRepository(db *DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func fetchAmenityByIDCall(id int) Call {
	return Call{
		Procedure: "spFetchAmenityByID",
		In:        []Param{{"AmenityID", id}},
	}
}

// FetchAll lists amenities; a nil isActive means no filter.
func (r *AmenityRepository) FetchAll(ctx context.Context, isActive *bool) (models.AmenityFetchResult, error) {
	var result models.AmenityFetchResult
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var out amenityStatus
		items, err := queryProc[models.AmenityDetails](tx, Call{
			Procedure: "spFetcAmenities",
			In:        []Param{{"IsActive", nullBool(isActive)}},
			Out:       []string{"Status", "Message"},
		}, &out)
		if err != nil {
			return err
		}
		result = models.AmenityFetchResult{
			Amenities: items,
			IsSuccess: out.ok(),
			Message:   messageOr(out.Message, "Amenities could not be retrieved"),
		}
		return nil
	})
	if err != nil {
		return models.AmenityFetchResult{}, fmt.Errorf("fetch amenities: %w", err)
	}
	return result, nil
}

// FetchByID returns nil when no amenity has the given id.
func (r *AmenityRepository) FetchByID(ctx context.Context, id int) (*models.AmenityDetails, error) {
	var found []models.AmenityDetails
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		var err error
		found, err = queryProc[models.AmenityDetails](tx, fetchAmenityByIDCall(id), nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch amenity %d: %w", id, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

type amenityInsertOut struct {
	AmenityID sql.NullInt64  `gorm:"column:AmenityID"`
	Status    sql.NullInt64  `gorm:"column:Status"`
	Message   sql.NullString `gorm:"column:Message"`
}

func (r *AmenityRepository) Insert(ctx context.Context, payload models.AmenityInsert, actor string) (models.AmenityInsertResult, error) {
	var out amenityInsertOut
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spAddAmenity",
			In: []Param{
				{"Name", payload.Name},
				{"Description", payload.Description},
				{"CreatedBy", actor},
			},
			Out: []string{"AmenityID", "Status", "Message"},
		}, &out)
	})
	if err != nil {
		return models.AmenityInsertResult{}, fmt.Errorf("insert amenity: %w", err)
	}

	status := amenityStatus{Status: out.Status, Message: out.Message}
	if !status.ok() {
		return models.AmenityInsertResult{
			Message: messageOr(out.Message, "Amenity could not be created"),
		}, nil
	}
	return models.AmenityInsertResult{
		AmenityID: int(out.AmenityID.Int64),
		IsCreated: true,
		Message:   messageOr(out.Message, "Amenity created successfully"),
	}, nil
}

func (r *AmenityRepository) Update(ctx context.Context, payload models.AmenityUpdate, actor string) (models.AmenityUpdateResult, error) {
	var out amenityStatus
	err := r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spUpdateAmenity",
			In: []Param{
				{"AmenityID", payload.AmenityID},
				{"Name", payload.Name},
				{"Description", payload.Description},
				{"IsActive", nullBool(payload.IsActive)},
				{"ModifiedBy", actor},
			},
			Out: []string{"Status", "Message"},
		}, &out)
	})
	if err != nil {
		return models.AmenityUpdateResult{}, fmt.Errorf("update amenity %d: %w", payload.AmenityID, err)
	}
	return models.AmenityUpdateResult{
		AmenityID: payload.AmenityID,
		IsUpdated: out.ok(),
		Message:   messageOr(out.Message, "Amenity could not be updated"),
	}, nil
}

// Delete removes the amenity if it exists. The lookup and the delete share one
// transaction, so a missing row is reported as NotFound without calling the
// delete procedure. spFetchAmenityByID does not lock the row, so a delete
// committed by another session in between still ends in the procedure's
// failure status.
func (r *AmenityRepository) Delete(ctx context.Context, id int, actor string) (models.AmenityDeleteResult, error) {
	result := models.AmenityDeleteResult{AmenityID: id}
	err := r.db.withTx(ctx, func(tx *gorm.DB) error {
		found, err := queryProc[models.AmenityDetails](tx, fetchAmenityByIDCall(id), nil)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			result.NotFound = true
			result.Message = fmt.Sprintf("Amenity with Id %d is not found", id)
			return nil
		}

		var out amenityStatus
		if err := execProc(tx, Call{
			Procedure: "spDeleteAmenity",
			In:        []Param{{"AmenityID", id}},
			Out:       []string{"Status", "Message"},
		}, &out); err != nil {
			return err
		}
		result.IsDeleted = out.ok()
		result.Message = messageOr(out.Message, "Amenity could not be deleted")
		return nil
	})
	if err != nil {
		return models.AmenityDeleteResult{}, fmt.Errorf("delete amenity %d: %w", id, err)
	}
	if result.IsDeleted {
		log.Printf("amenity %d deleted by %s", id, actor)
	}
	return result, nil
}

type bulkAmenity struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
	CreatedBy   string `json:"CreatedBy"`
}

// BulkInsert hands the whole batch to the store as one JSON document; the
// procedure applies it all or nothing.
func (r *AmenityRepository) BulkInsert(ctx context.Context, items []models.AmenityInsert, actor string) (models.AmenityBulkResult, error) {
	rows := make([]bulkAmenity, len(items))
	for i, it := range items {
		rows[i] = bulkAmenity{Name: it.Name, Description: it.Description, CreatedBy: actor}
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return models.AmenityBulkResult{}, fmt.Errorf("bulk insert amenities: encode: %w", err)
	}

	var out amenityStatus
	err = r.db.withConn(ctx, func(tx *gorm.DB) error {
		return execProc(tx, Call{
			Procedure: "spBulkInsertAmenities",
			In:        []Param{{"Amenities", datatypes.JSON(payload)}},
			Out:       []string{"Status", "Message"},
		}, &out)
	})
	if err != nil {
		return models.AmenityBulkResult{}, fmt.Errorf("bulk insert amenities: %w", err)
	}

	result := models.AmenityBulkResult{
		IsSuccess: out.ok(),
		Message:   messageOr(out.Message, "Amenities could not be inserted"),
	}
	if result.IsSuccess {
		result.Count = len(items)
	}
	return result, nil
}
