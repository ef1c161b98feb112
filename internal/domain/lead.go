package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Lead struct - Persisted enquiry collected by the conversation
type Lead struct {
	ID              *uuid.UUID `gorm:"type:uuid;primary_key;"`
	PhoneNumber     string     `gorm:"type:varchar(32);not null;index"`
	FullName        string     `gorm:"type:varchar(255)"`
	Country         string     `gorm:"type:varchar(255)"`
	CompanyName     string     `gorm:"type:varchar(255)"`
	Email           string     `gorm:"type:varchar(255)"`
	SelectedProduct string     `gorm:"type:varchar(255)"`
	CreatedAt       *time.Time `gorm:"type:timestamp"`
	UpdatedAt       *time.Time `gorm:"type:timestamp"`
}

// NewLead converts collected conversation data into a lead entity
func NewLead(data LeadData) *Lead {
	return &Lead{
		PhoneNumber:     data.PhoneNumber,
		FullName:        data.FullName,
		Country:         data.Country,
		CompanyName:     data.CompanyName,
		Email:           data.Email,
		SelectedProduct: data.SelectedProduct,
	}
}

// TableName func
func (l *Lead) TableName() string {
	return "leads"
}

// BeforeCreate hook - generates UUID before creating
func (l *Lead) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	l.ID = &id
	logrus.Debugf("BeforeCreate lead id=%s", id)
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&Lead{}, &Product{})
	if err != nil {
		panic(err)
	}
}
