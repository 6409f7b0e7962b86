// Package jirakiller is the store access for the jirakiller schema.
package jirakiller

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/database"
	model "github.com/yukikurage/demodb/internal/models/jirakiller"
	"github.com/yukikurage/demodb/internal/repository"
)

// Repository groups the schema's tables with its joined queries.
type Repository struct {
	db *gorm.DB

	Users    *repository.Table[model.User, *model.User]
	Projects *repository.Table[model.Project, *model.Project]
	Tickets  *repository.Table[model.Ticket, *model.Ticket]
	TimeLogs *repository.Table[model.TimeLog, *model.TimeLog]
}

// TicketDetail is a ticket with its relations and the number of time logs.
type TicketDetail struct {
	model.Ticket
	TimeLogCount int64 `json:"time_log_count"`
}

// Queries defines the joined reads of the jirakiller schema.
type Queries interface {
	ListTickets(ctx context.Context, filter string, page int) ([]model.TicketListItem, error)
	GetTicket(ctx context.Context, id uint64) (*TicketDetail, error)
	ListTimeLogs(ctx context.Context, ticketID uint64) ([]model.TimeLog, error)
}

var _ Queries = (*Repository)(nil)

func New(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		Users:    repository.NewTable[model.User](db, "name", "name", "email"),
		Projects: repository.NewTable[model.Project](db, "name", "name", "description"),
		Tickets:  repository.NewTable[model.Ticket](db, "title", "title", "description"),
		TimeLogs: repository.NewTable[model.TimeLog](db, ""),
	}
}

// ListTickets returns one page of tickets whose title or project name
// contains filter, newest first.
func (r *Repository) ListTickets(ctx context.Context, filter string, page int) ([]model.TicketListItem, error) {
	items := []model.TicketListItem{}
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("tickets.id, tickets.title, tickets.priority, tickets.status, projects.name AS project_name, tickets.created_at").
		Joins("JOIN projects ON projects.id = tickets.project_id").
		Scopes(database.Search(filter, "tickets.title", "projects.name"), database.Paginate(page)).
		Order("tickets.created_at DESC").Order("tickets.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, repository.Translate(err)
	}
	return items, nil
}

// GetTicket returns the ticket with its project and assignee.
func (r *Repository) GetTicket(ctx context.Context, id uint64) (*TicketDetail, error) {
	ticket, err := r.Tickets.FindByID(ctx, id, "Project", "AssignedUser")
	if err != nil {
		return nil, err
	}

	detail := &TicketDetail{Ticket: *ticket}
	if err := r.db.WithContext(ctx).Model(&model.TimeLog{}).
		Where("ticket_id = ?", id).
		Count(&detail.TimeLogCount).Error; err != nil {
		return nil, repository.Translate(err)
	}
	return detail, nil
}

// ListTimeLogs returns the ticket's time logs in logged order.
func (r *Repository) ListTimeLogs(ctx context.Context, ticketID uint64) ([]model.TimeLog, error) {
	if _, err := r.Tickets.FindByID(ctx, ticketID); err != nil {
		return nil, err
	}

	logs := []model.TimeLog{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("ticket_id = ?", ticketID).
		Order("logged_at").Order("id").
		Find(&logs).Error
	if err != nil {
		return nil, repository.Translate(err)
	}
	return logs, nil
}
