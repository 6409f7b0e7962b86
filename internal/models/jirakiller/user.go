package jirakiller

import "github.com/yukikurage/demodb/internal/models"

type User struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	models.Timestamps

	// Relations
	Tickets  []Ticket  `gorm:"foreignKey:AssignedUserID;constraint:OnDelete:SET NULL" json:"-"`
	TimeLogs []TimeLog `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
