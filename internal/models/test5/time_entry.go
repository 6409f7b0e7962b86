package test5

import (
	"time"

	"github.com/yukikurage/demodb/internal/models"
)

type TimeEntry struct {
	ID       uint64    `gorm:"primarykey" json:"id"`
	TicketID uint64    `gorm:"not null;index" json:"ticket_id"`
	UserID   uint64    `gorm:"not null;index" json:"user_id"`
	Hours    float64   `gorm:"type:decimal(5,2);not null" json:"hours"`
	LoggedAt time.Time `gorm:"not null" json:"logged_at"`
	models.Timestamps

	// Relations
	Ticket *Ticket `gorm:"foreignKey:TicketID" json:"-"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
