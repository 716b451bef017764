package models

type RoomTypeDetails struct {
	RoomTypeID            int    `gorm:"column:RoomTypeID" json:"RoomTypeID"`
	TypeName              string `gorm:"column:TypeName" json:"TypeName"`
	AccessibilityFeatures string `gorm:"column:AccessibilityFeatures" json:"AccessibilityFeatures"`
	Description           string `gorm:"column:Description" json:"Description"`
	IsActive              bool   `gorm:"column:IsActive" json:"IsActive"`
}

type RoomTypeListQuery struct {
	IsActive *bool `form:"IsActive"`
}

type CreateRoomTypeRequest struct {
	TypeName              string `json:"TypeName" binding:"required,max=50"`
	AccessibilityFeatures string `json:"AccessibilityFeatures" binding:"max=255"`
	Description           string `json:"Description" binding:"max=255"`
}

type CreateRoomTypeResponse struct {
	RoomTypeID int    `json:"RoomTypeID"`
	IsCreated  bool   `json:"IsCreated"`
	Message    string `json:"Message"`
}

type UpdateRoomTypeRequest struct {
	RoomTypeID            int    `json:"RoomTypeID" binding:"required,gt=0"`
	TypeName              string `json:"TypeName" binding:"required,max=50"`
	AccessibilityFeatures string `json:"AccessibilityFeatures" binding:"max=255"`
	Description           string `json:"Description" binding:"max=255"`
}

type UpdateRoomTypeResponse struct {
	RoomTypeID int    `json:"RoomTypeID"`
	IsUpdated  bool   `json:"IsUpdated"`
	Message    string `json:"Message"`
}

// RoomTypeToggleQuery binds POST /api/RoomType/ActiveInActive?RoomTypeId=&IsActive=.
type RoomTypeToggleQuery struct {
	RoomTypeID int   `form:"RoomTypeId" binding:"required,gt=0"`
	IsActive   *bool `form:"IsActive" binding:"required"`
}

type RoomTypeToggleResponse struct {
	RoomTypeID int    `json:"RoomTypeID"`
	IsActive   bool   `json:"IsActive"`
	IsUpdated  bool   `json:"IsUpdated"`
	Message    string `json:"Message"`
}

type DeleteRoomTypeResponse struct {
	RoomTypeID int    `json:"RoomTypeID"`
	IsDeleted  bool   `json:"IsDeleted"`
	NotFound   bool   `json:"-"`
	Message    string `json:"Message"`
}
