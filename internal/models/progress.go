package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress is a dated body measurement entry. Weight is nullable: an entry
// can record other measurements without a weigh-in, and latest-weight lookups
// skip those rows.
type Progress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_progress_user_date" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Date        time.Time  `gorm:"type:date;uniqueIndex:idx_progress_user_date" json:"date"`
	WeightKG    *float64   `json:"weight_kg" example:"80"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CreatedByID uuid.UUID  `gorm:"type:uuid" json:"created_by_id"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updated_by_id"`
}

func (Progress) TableName() string { return "progress" }
