// Package test5 is the store access for the test5 schema. Every update in
// this schema goes through Table.ReplaceIfUnchanged.
package test5

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/database"
	model "github.com/yukikurage/demodb/internal/models/test5"
	"github.com/yukikurage/demodb/internal/repository"
)

type Repository struct {
	db *gorm.DB

	Users       *repository.Table[model.User, *model.User]
	Projects    *repository.Table[model.Project, *model.Project]
	Tickets     *repository.Table[model.Ticket, *model.Ticket]
	TimeEntries *repository.Table[model.TimeEntry, *model.TimeEntry]
}

// TicketDetail is a ticket with its relations and the number of time entries.
type TicketDetail struct {
	model.Ticket
	TimeEntryCount int64 `json:"time_entry_count"`
}

// Queries defines the joined reads of the test5 schema.
type Queries interface {
	ListTickets(ctx context.Context, filter string, page int) ([]model.TicketListItem, error)
	GetTicket(ctx context.Context, id uint64) (*TicketDetail, error)
	ListTimeEntries(ctx context.Context, ticketID uint64) ([]model.TimeEntry, error)
	ProjectOwners(ctx context.Context) ([]model.User, error)
}

var _ Queries = (*Repository)(nil)

func New(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		Users:       repository.NewTable[model.User](db, "name", "name", "email"),
		Projects:    repository.NewTable[model.Project](db, "name", "name", "description"),
		Tickets:     repository.NewTable[model.Ticket](db, "title", "title", "description"),
		TimeEntries: repository.NewTable[model.TimeEntry](db, ""),
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

// GetTicket returns the ticket with its project, creator and assignee.
func (r *Repository) GetTicket(ctx context.Context, id uint64) (*TicketDetail, error) {
	ticket, err := r.Tickets.FindByID(ctx, id, "Project", "Creator", "Assignee")
	if err != nil {
		return nil, err
	}

	detail := &TicketDetail{Ticket: *ticket}
	if err := r.db.WithContext(ctx).Model(&model.TimeEntry{}).
		Where("ticket_id = ?", id).
		Count(&detail.TimeEntryCount).Error; err != nil {
		return nil, repository.Translate(err)
	}
	return detail, nil
}

// ListTimeEntries returns the ticket's time entries in logged order.
func (r *Repository) ListTimeEntries(ctx context.Context, ticketID uint64) ([]model.TimeEntry, error) {
	if _, err := r.Tickets.FindByID(ctx, ticketID); err != nil {
		return nil, err
	}

	entries := []model.TimeEntry{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("ticket_id = ?", ticketID).
		Order("logged_at").Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, repository.Translate(err)
	}
	return entries, nil
}

// ProjectOwners returns the users whose role lets them own projects.
func (r *Repository) ProjectOwners(ctx context.Context) ([]model.User, error) {
	roles := make([]model.Role, 0, len(model.Roles))
	for _, role := range model.Roles {
		if role.OwnsProjects() {
			roles = append(roles, role)
		}
	}

	users := []model.User{}
	if err := r.db.WithContext(ctx).Where("role IN ?", roles).Order("name").Find(&users).Error; err != nil {
		return nil, repository.Translate(err)
	}
	return users, nil
}
