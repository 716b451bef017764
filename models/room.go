package models

// Room statuses accepted by the store.
const (
	RoomStatusAvailable        = "Available"
	RoomStatusUnderMaintenance = "Under Maintenance"
	RoomStatusOccupied         = "Occupied"

	// RoomStatusAll is only valid as a list filter and means "no filter".
	RoomStatusAll = "All"
)

type RoomDetails struct {
	RoomID     int     `gorm:"column:RoomID" json:"RoomID"`
	RoomNumber string  `gorm:"column:RoomNumber" json:"RoomNumber"`
	RoomTypeID int     `gorm:"column:RoomTypeID" json:"RoomTypeID"`
	Price      float64 `gorm:"column:Price" json:"Price"`
	BedType    string  `gorm:"column:BedType" json:"BedType"`
	ViewType   string  `gorm:"column:ViewType" json:"ViewType"`
	Status     string  `gorm:"column:Status" json:"Status"`
	IsActive   bool    `gorm:"column:IsActive" json:"IsActive"`
}

type RoomListQuery struct {
	RoomTypeID *int   `form:"RoomTypeID" binding:"omitempty,gte=1"`
	Status     string `form:"Status" binding:"omitempty,oneof=Available 'Under Maintenance' Occupied All"`
}

type CreateRoomRequest struct {
	RoomNumber string  `json:"RoomNumber" binding:"required,max=10"`
	RoomTypeID int     `json:"RoomTypeID" binding:"required,gte=1"`
	Price      float64 `json:"Price" binding:"required,gt=0"`
	BedType    string  `json:"BedType" binding:"max=50"`
	ViewType   string  `json:"ViewType" binding:"max=50"`
	Status     string  `json:"Status" binding:"required,oneof=Available 'Under Maintenance' Occupied"`
	IsActive   *bool   `json:"IsActive" binding:"required"`
}

type CreateRoomResponse struct {
	RoomID    int    `json:"RoomID"`
	IsCreated bool   `json:"IsCreated"`
	Message   string `json:"Message"`
}

type UpdateRoomRequest struct {
	RoomID     int     `json:"RoomID" binding:"required,gt=0"`
	RoomNumber string  `json:"RoomNumber" binding:"required,max=10"`
	RoomTypeID int     `json:"RoomTypeID" binding:"required,gte=1"`
	Price      float64 `json:"Price" binding:"required,gt=0"`
	BedType    string  `json:"BedType" binding:"max=50"`
	ViewType   string  `json:"ViewType" binding:"max=50"`
	Status     string  `json:"Status" binding:"required,oneof=Available 'Under Maintenance' Occupied"`
	IsActive   *bool   `json:"IsActive" binding:"required"`
}

type UpdateRoomResponse struct {
	RoomID    int    `json:"RoomID"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}

type DeleteRoomResponse struct {
	RoomID    int    `json:"RoomID"`
	IsDeleted bool   `json:"IsDeleted"`
	NotFound  bool   `json:"-"`
	Message   string `json:"Message"`
}
