package models

// AmenityDetails is one row of the amenity procedures' result sets.
type AmenityDetails struct {
	AmenityID   int    `gorm:"column:AmenityID" json:"AmenityID"`
	Name        string `gorm:"column:Name" json:"Name"`
	Description string `gorm:"column:Description" json:"Description"`
	IsActive    bool   `gorm:"column:IsActive" json:"IsActive"`
}

type AmenityFetchQuery struct {
	IsActive *bool `form:"isActive"`
}

type AmenityFetchResult struct {
	Amenities []AmenityDetails `json:"Amenities"`
	IsSuccess bool             `json:"IsSuccess"`
	Message   string           `json:"Message"`
}

type AmenityInsert struct {
	Name        string `json:"Name" binding:"required,max=100"`
	Description string `json:"Description" binding:"max=255"`
}

type AmenityInsertResult struct {
	AmenityID int    `json:"AmenityID"`
	IsCreated bool   `json:"IsCreated"`
	Message   string `json:"Message"`
}

type AmenityUpdate struct {
	AmenityID   int    `json:"AmenityID" binding:"required,gt=0"`
	Name        string `json:"Name" binding:"required,max=100"`
	Description string `json:"Description" binding:"max=255"`
	IsActive    *bool  `json:"IsActive" binding:"required"`
}

type AmenityUpdateResult struct {
	AmenityID int    `json:"AmenityID"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}

type AmenityDeleteResult struct {
	AmenityID int    `json:"AmenityID"`
	IsDeleted bool   `json:"IsDeleted"`
	NotFound  bool   `json:"-"`
	Message   string `json:"Message"`
}

type AmenityBulkResult struct {
	Count     int    `json:"Count"`
	IsSuccess bool   `json:"IsSuccess"`
	Message   string `json:"Message"`
}
