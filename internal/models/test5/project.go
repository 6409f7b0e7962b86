package test5

import "github.com/yukikurage/demodb/internal/models"

type Project struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	CreatedBy   uint64  `gorm:"not null;index" json:"created_by"`
	models.Timestamps

	// Relations
	Creator *User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Tickets []Ticket `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
