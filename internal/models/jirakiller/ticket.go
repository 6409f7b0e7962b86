package jirakiller

import (
	"time"

	"github.com/yukikurage/demodb/internal/models"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every ticket priority, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusClosed     Status = "closed"
)

var Statuses = []Status{StatusOpen, StatusInProgress, StatusCompleted, StatusBlocked, StatusClosed}

// HasWorkLogged reports whether tickets in this status usually carry time logs.
func (s Status) HasWorkLogged() bool {
	return s == StatusInProgress || s == StatusCompleted || s == StatusClosed
}

type Ticket struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	ProjectID      uint64     `gorm:"not null;index" json:"project_id"`
	AssignedUserID *uint64    `gorm:"index" json:"assigned_user_id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    *string    `gorm:"type:text" json:"description"`
	Priority       Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	Status         Status     `gorm:"type:varchar(20);not null" json:"status"`
	DueDate        *time.Time `json:"due_date"`
	models.Timestamps

	// Relations
	Project      *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedUser *User     `gorm:"foreignKey:AssignedUserID" json:"assigned_user,omitempty"`
	TimeLogs     []TimeLog `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
}

// TicketListItem is the row projection shown by the ticket list.
type TicketListItem struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	ProjectName string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at"`
}
