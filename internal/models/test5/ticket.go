package test5

import (
	"time"

	"github.com/yukikurage/demodb/internal/models"
)

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
	StatusClosed     Status = "Closed"
)

var Statuses = []Status{StatusOpen, StatusInProgress, StatusCompleted, StatusBlocked, StatusClosed}

// HasWorkLogged reports whether tickets in this status usually carry time entries.
func (s Status) HasWorkLogged() bool {
	return s == StatusInProgress || s == StatusCompleted || s == StatusClosed
}

type Ticket struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	ProjectID   uint64     `gorm:"not null;index" json:"project_id"`
	Priority    Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	Status      Status     `gorm:"type:varchar(20);not null" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   uint64     `gorm:"not null;index" json:"created_by"`
	AssignedTo  *uint64    `gorm:"index" json:"assigned_to"`
	models.Timestamps

	// Relations
	Project     *Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator     *User       `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Assignee    *User       `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	TimeEntries []TimeEntry `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`
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
