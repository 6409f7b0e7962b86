package jirakiller

import (
	"time"

	"github.com/yukikurage/demodb/internal/models"
)

type Project struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	models.Timestamps

	// Relations
	Tickets []Ticket `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
