package test5

import "github.com/yukikurage/demodb/internal/models"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDeveloper Role = "developer"
	RoleTester    Role = "tester"
)

var Roles = []Role{RoleAdmin, RoleManager, RoleDeveloper, RoleTester}

// OwnsProjects reports whether users with this role may create projects.
func (r Role) OwnsProjects() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role  Role   `gorm:"type:varchar(20);not null" json:"role"`
	models.Timestamps

	// Relations
	Projects        []Project   `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedTickets  []Ticket    `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT" json:"-"`
	AssignedTickets []Ticket    `gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL" json:"-"`
	TimeEntries     []TimeEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
