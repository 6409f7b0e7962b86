// Package jirakiller implements the CRUD operations of the jirakiller schema.
package jirakiller

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/demodb/internal/models"
	model "github.com/yukikurage/demodb/internal/models/jirakiller"
	"github.com/yukikurage/demodb/internal/repository"
	repo "github.com/yukikurage/demodb/internal/repository/jirakiller"
	"github.com/yukikurage/demodb/internal/services"
	"github.com/yukikurage/demodb/internal/validation"
)

// Service handles jirakiller business logic
type Service struct {
	users    repository.Store[model.User]
	projects repository.Store[model.Project]
	tickets  repository.Store[model.Ticket]
	timeLogs repository.Store[model.TimeLog]
	queries  repo.Queries
}

// NewService creates a new Service
func NewService(r *repo.Repository) *Service {
	return &Service{
		users:    r.Users,
		projects: r.Projects,
		tickets:  r.Tickets,
		timeLogs: r.TimeLogs,
		queries:  r,
	}
}

// UserInput is the editable part of a user
type UserInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// ProjectInput is the editable part of a project
type ProjectInput struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// TicketInput is the editable part of a ticket
type TicketInput struct {
	ProjectID      uint64         `json:"project_id" validate:"required"`
	AssignedUserID *uint64        `json:"assigned_user_id"`
	Title          string         `json:"title" validate:"required,max=255"`
	Description    *string        `json:"description"`
	Priority       model.Priority `json:"priority" validate:"required,oneof=low medium high critical"`
	Status         model.Status   `json:"status" validate:"required,oneof=open in_progress completed blocked closed"`
	DueDate        *time.Time     `json:"due_date"`
}

// TimeLogInput is the editable part of a time log
type TimeLogInput struct {
	TicketID uint64    `json:"ticket_id" validate:"required"`
	UserID   uint64    `json:"user_id" validate:"required"`
	Hours    float64   `json:"hours" validate:"gte=0.01,lte=999.99"`
	LoggedAt time.Time `json:"logged_at" validate:"required"`
}

// Users

func (s *Service) ListUsers(ctx context.Context, filter string, page int) ([]model.User, error) {
	return s.users.List(ctx, filter, page)
}

func (s *Service) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *Service) LookupUsers(ctx context.Context, query string) ([]models.Option, error) {
	return s.users.Lookup(ctx, query)
}

func (s *Service) CreateUser(ctx context.Context, input UserInput) (*model.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user := input.user()
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uint64, input UserInput) (*model.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user := input.user()
	if err := s.users.Replace(ctx, id, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (in UserInput) user() *model.User {
	return &model.User{Name: services.Clean(in.Name), Email: services.Clean(in.Email)}
}

// Projects

func (s *Service) ListProjects(ctx context.Context, filter string, page int) ([]model.Project, error) {
	return s.projects.List(ctx, filter, page)
}

func (s *Service) GetProject(ctx context.Context, id uint64) (*model.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *Service) LookupProjects(ctx context.Context, query string) ([]models.Option, error) {
	return s.projects.Lookup(ctx, query)
}

func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (*model.Project, error) {
	project, err := input.project()
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *Service) UpdateProject(ctx context.Context, id uint64, input ProjectInput) (*model.Project, error) {
	project, err := input.project()
	if err != nil {
		return nil, err
	}
	if err := s.projects.Replace(ctx, id, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *Service) DeleteProject(ctx context.Context, id uint64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (in ProjectInput) project() (*model.Project, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := services.CheckRange("start_date", in.StartDate, "end_date", in.EndDate); err != nil {
		return nil, err
	}
	return &model.Project{
		Name:        services.Clean(in.Name),
		Description: services.CleanOptional(in.Description),
		StartDate:   services.UTC(in.StartDate),
		EndDate:     services.UTC(in.EndDate),
	}, nil
}

// Tickets

func (s *Service) ListTickets(ctx context.Context, filter string, page int) ([]model.TicketListItem, error) {
	return s.queries.ListTickets(ctx, filter, page)
}

func (s *Service) GetTicket(ctx context.Context, id uint64) (*repo.TicketDetail, error) {
	return s.queries.GetTicket(ctx, id)
}

func (s *Service) LookupTickets(ctx context.Context, query string) ([]models.Option, error) {
	return s.tickets.Lookup(ctx, query)
}

func (s *Service) CreateTicket(ctx context.Context, input TicketInput) (*model.Ticket, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	ticket := input.ticket()
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (s *Service) UpdateTicket(ctx context.Context, id uint64, input TicketInput) (*model.Ticket, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	ticket := input.ticket()
	if err := s.tickets.Replace(ctx, id, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	return ticket, nil
}

func (s *Service) DeleteTicket(ctx context.Context, id uint64) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func (in TicketInput) ticket() *model.Ticket {
	return &model.Ticket{
		ProjectID:      in.ProjectID,
		AssignedUserID: services.OptionalID(in.AssignedUserID),
		Title:          services.Clean(in.Title),
		Description:    services.CleanOptional(in.Description),
		Priority:       in.Priority,
		Status:         in.Status,
		DueDate:        services.UTC(in.DueDate),
	}
}

// Time logs

func (s *Service) ListTimeLogs(ctx context.Context, ticketID uint64) ([]model.TimeLog, error) {
	return s.queries.ListTimeLogs(ctx, ticketID)
}

func (s *Service) GetTimeLog(ctx context.Context, id uint64) (*model.TimeLog, error) {
	return s.timeLogs.FindByID(ctx, id, "User")
}

func (s *Service) CreateTimeLog(ctx context.Context, input TimeLogInput) (*model.TimeLog, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	log := input.timeLog()
	if err := s.timeLogs.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create time log: %w", err)
	}
	return log, nil
}

func (s *Service) UpdateTimeLog(ctx context.Context, id uint64, input TimeLogInput) (*model.TimeLog, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	log := input.timeLog()
	if err := s.timeLogs.Replace(ctx, id, log); err != nil {
		return nil, fmt.Errorf("failed to update time log: %w", err)
	}
	return log, nil
}

func (s *Service) DeleteTimeLog(ctx context.Context, id uint64) error {
	if err := s.timeLogs.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time log: %w", err)
	}
	return nil
}

func (in TimeLogInput) timeLog() *model.TimeLog {
	return &model.TimeLog{
		TicketID: in.TicketID,
		UserID:   in.UserID,
		Hours:    services.RoundHours(in.Hours, 2),
		LoggedAt: in.LoggedAt.UTC().Truncate(time.Millisecond),
	}
}
