// Package test5 implements the CRUD operations of the test5 schema. Updates
// carry the updated_at value the caller last read and fail with ErrConflict
// when the row has changed since.
package test5

import (
	"context"
	"errors"
	"fmt"
	"time"

	apierrors "github.com/yukikurage/demodb/internal/errors"
	"github.com/yukikurage/demodb/internal/models"
	model "github.com/yukikurage/demodb/internal/models/test5"
	"github.com/yukikurage/demodb/internal/repository"
	repo "github.com/yukikurage/demodb/internal/repository/test5"
	"github.com/yukikurage/demodb/internal/services"
	"github.com/yukikurage/demodb/internal/validation"
)

// Service handles test5 business logic
type Service struct {
	users       repository.Store[model.User]
	projects    repository.Store[model.Project]
	tickets     repository.Store[model.Ticket]
	timeEntries repository.Store[model.TimeEntry]
	queries     repo.Queries
}

// NewService creates a new Service
func NewService(r *repo.Repository) *Service {
	return &Service{
		users:       r.Users,
		projects:    r.Projects,
		tickets:     r.Tickets,
		timeEntries: r.TimeEntries,
		queries:     r,
	}
}

// UserInput is the editable part of a user
type UserInput struct {
	Name  string     `json:"name" validate:"required,max=255"`
	Email string     `json:"email" validate:"required,email,max=255"`
	Role  model.Role `json:"role" validate:"required,oneof=admin manager developer tester"`
}

// UpdateUserInput is a UserInput with the concurrency token
type UpdateUserInput struct {
	UserInput
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
}

// ProjectInput is the editable part of a project
type ProjectInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

// CreateProjectInput names the user creating the project
type CreateProjectInput struct {
	ProjectInput
	CreatedBy uint64 `json:"created_by" validate:"required"`
}

type UpdateProjectInput struct {
	ProjectInput
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
}

// TicketInput is the editable part of a ticket
type TicketInput struct {
	ProjectID   uint64         `json:"project_id" validate:"required"`
	AssignedTo  *uint64        `json:"assigned_to"`
	Title       string         `json:"title" validate:"required,max=255"`
	Description *string        `json:"description"`
	Priority    model.Priority `json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Status      model.Status   `json:"status" validate:"required,oneof=Open InProgress Completed Blocked Closed"`
	DueDate     *time.Time     `json:"due_date"`
}

// CreateTicketInput names the user creating the ticket
type CreateTicketInput struct {
	TicketInput
	CreatedBy uint64 `json:"created_by" validate:"required"`
}

type UpdateTicketInput struct {
	TicketInput
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
}

// TimeEntryInput is the editable part of a time entry
type TimeEntryInput struct {
	TicketID uint64    `json:"ticket_id" validate:"required"`
	UserID   uint64    `json:"user_id" validate:"required"`
	Hours    float64   `json:"hours" validate:"gte=0.01,lte=999.99"`
	LoggedAt time.Time `json:"logged_at" validate:"required"`
}

type UpdateTimeEntryInput struct {
	TimeEntryInput
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
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

// LookupProjectOwners lists the users that may create projects.
func (s *Service) LookupProjectOwners(ctx context.Context) ([]models.Option, error) {
	owners, err := s.queries.ProjectOwners(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]models.Option, 0, len(owners))
	for _, u := range owners {
		options = append(options, models.Option{Value: u.ID, Label: u.Name})
	}
	return options, nil
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

func (s *Service) UpdateUser(ctx context.Context, id uint64, input UpdateUserInput) (*model.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	user := input.user()
	if err := s.users.ReplaceIfUnchanged(ctx, id, input.UpdatedAt, user); err != nil {
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
	return &model.User{Name: services.Clean(in.Name), Email: services.Clean(in.Email), Role: in.Role}
}

// Projects

func (s *Service) ListProjects(ctx context.Context, filter string, page int) ([]model.Project, error) {
	return s.projects.List(ctx, filter, page)
}

func (s *Service) GetProject(ctx context.Context, id uint64) (*model.Project, error) {
	return s.projects.FindByID(ctx, id, "Creator")
}

func (s *Service) LookupProjects(ctx context.Context, query string) ([]models.Option, error) {
	return s.projects.Lookup(ctx, query)
}

func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	creator, err := s.users.FindByID(ctx, input.CreatedBy)
	if errors.Is(err, apierrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: created_by %d does not exist", apierrors.ErrForeignKey, input.CreatedBy)
	}
	if err != nil {
		return nil, err
	}
	if !creator.Role.OwnsProjects() {
		return nil, fmt.Errorf("%w: users with role %s cannot own projects", apierrors.ErrInvalid, creator.Role)
	}

	project := input.project()
	project.CreatedBy = input.CreatedBy
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *Service) UpdateProject(ctx context.Context, id uint64, input UpdateProjectInput) (*model.Project, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	current, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project := input.project()
	project.CreatedBy = current.CreatedBy
	if err := s.projects.ReplaceIfUnchanged(ctx, id, input.UpdatedAt, project); err != nil {
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

func (in ProjectInput) project() *model.Project {
	return &model.Project{
		Name:        services.Clean(in.Name),
		Description: services.CleanOptional(in.Description),
	}
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

func (s *Service) CreateTicket(ctx context.Context, input CreateTicketInput) (*model.Ticket, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	ticket := input.ticket()
	ticket.CreatedBy = input.CreatedBy
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return ticket, nil
}

func (s *Service) UpdateTicket(ctx context.Context, id uint64, input UpdateTicketInput) (*model.Ticket, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	current, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket := input.ticket()
	ticket.CreatedBy = current.CreatedBy
	if err := s.tickets.ReplaceIfUnchanged(ctx, id, input.UpdatedAt, ticket); err != nil {
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
		ProjectID:   in.ProjectID,
		AssignedTo:  services.OptionalID(in.AssignedTo),
		Title:       services.Clean(in.Title),
		Description: services.CleanOptional(in.Description),
		Priority:    in.Priority,
		Status:      in.Status,
		DueDate:     services.UTC(in.DueDate),
	}
}

// Time entries

func (s *Service) ListTimeEntries(ctx context.Context, ticketID uint64) ([]model.TimeEntry, error) {
	return s.queries.ListTimeEntries(ctx, ticketID)
}

func (s *Service) GetTimeEntry(ctx context.Context, id uint64) (*model.TimeEntry, error) {
	return s.timeEntries.FindByID(ctx, id, "User")
}

func (s *Service) CreateTimeEntry(ctx context.Context, input TimeEntryInput) (*model.TimeEntry, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	entry := input.timeEntry()
	if err := s.timeEntries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}
	return entry, nil
}

func (s *Service) UpdateTimeEntry(ctx context.Context, id uint64, input UpdateTimeEntryInput) (*model.TimeEntry, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	entry := input.timeEntry()
	if err := s.timeEntries.ReplaceIfUnchanged(ctx, id, input.UpdatedAt, entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}
	return entry, nil
}

func (s *Service) DeleteTimeEntry(ctx context.Context, id uint64) error {
	if err := s.timeEntries.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

func (in TimeEntryInput) timeEntry() *model.TimeEntry {
	return &model.TimeEntry{
		TicketID: in.TicketID,
		UserID:   in.UserID,
		Hours:    services.RoundHours(in.Hours, 2),
		LoggedAt: in.LoggedAt.UTC().Truncate(time.Millisecond),
	}
}
