package seeder

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/models"
	model "github.com/yukikurage/demodb/internal/models/test5"
	repo "github.com/yukikurage/demodb/internal/repository/test5"
	"github.com/yukikurage/demodb/internal/services"
)

var test5ProjectNames = []string{
	"Billing Service", "Onboarding Flow", "Reporting Engine", "Search Revamp",
	"Notification Hub", "Partner API", "Audit Trail", "Mobile Checkout",
	"Support Console", "Data Warehouse", "Feature Flags", "Access Control",
}

// Role weights for users after the first, who is always an admin.
var roleWeights = []model.Role{
	model.RoleAdmin,
	model.RoleManager, model.RoleManager, model.RoleManager,
	model.RoleDeveloper, model.RoleDeveloper, model.RoleDeveloper, model.RoleDeveloper, model.RoleDeveloper, model.RoleDeveloper,
	model.RoleTester, model.RoleTester, model.RoleTester,
}

// Test5 seeds users with roles, projects owned by admins and managers,
// tickets and time entries.
func Test5(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	r := repo.New(db)
	f := NewFaker(opts.Seed)
	now := opts.now()
	mail := newEmails(f)
	var summary Summary

	users := make([]model.User, 20)
	for i := range users {
		role := model.RoleAdmin
		if i > 0 {
			role = Pick(f, roleWeights)
		}
		name := f.Name()
		users[i] = model.User{
			Name:       name,
			Email:      mail.For(name),
			Role:       role,
			Timestamps: stamps(f, now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0), now),
		}
	}
	if err := r.Users.CreateBatch(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	summary.add("users", len(users))

	var owners []model.User
	for _, u := range users {
		if u.Role.OwnsProjects() {
			owners = append(owners, u)
		}
	}

	projects := make([]model.Project, 10)
	for i := range projects {
		owner := Pick(f, owners)
		projects[i] = model.Project{
			Name:        Pick(f, test5ProjectNames) + " " + f.Code(3),
			Description: ptr(f.Paragraphs(1)),
			CreatedBy:   owner.ID,
			Timestamps:  stamps(f, owner.CreatedAt, now.AddDate(0, -2, 0), now),
		}
	}
	if err := r.Projects.CreateBatch(ctx, projects); err != nil {
		return nil, fmt.Errorf("failed to seed projects: %w", err)
	}
	summary.add("projects", len(projects))

	var tickets []model.Ticket
	for _, project := range projects {
		count := f.IntRange(5, 25)
		for i := 0; i < count; i++ {
			ts := stamps(f, project.CreatedAt, now.AddDate(0, 0, -1), now)
			t := model.Ticket{
				ProjectID:  project.ID,
				Title:      Pick(f, ticketTitles) + " - " + f.Code(4),
				Priority:   Pick(f, model.Priorities),
				Status:     Pick(f, model.Statuses),
				CreatedBy:  Pick(f, users).ID,
				Timestamps: ts,
			}
			if f.Chance(0.8) {
				t.Description = ptr(f.Paragraphs(f.IntRange(1, 2)))
			}
			if f.Chance(0.85) {
				t.AssignedTo = ptr(Pick(f, users).ID)
			}
			if f.Chance(0.5) {
				t.DueDate = ptr(f.Between(ts.CreatedAt.AddDate(0, 0, 1), now.AddDate(0, 2, 0)))
			}
			tickets = append(tickets, t)
		}
	}
	if err := r.Tickets.CreateBatch(ctx, tickets); err != nil {
		return nil, fmt.Errorf("failed to seed tickets: %w", err)
	}
	summary.add("tickets", len(tickets))

	var entries []model.TimeEntry
	for _, ticket := range tickets {
		if ticket.AssignedTo == nil || !ticket.Status.HasWorkLogged() {
			continue
		}

		cursor := ticket.CreatedAt
		count := f.IntRange(1, 6)
		for i := 0; i < count; i++ {
			loggedAt := f.Between(cursor, ticket.UpdatedAt)
			cursor = loggedAt
			entries = append(entries, model.TimeEntry{
				TicketID: ticket.ID,
				UserID:   *ticket.AssignedTo,
				Hours:    services.RoundHours(f.Float64Range(0.5, 8.0), 1),
				LoggedAt: loggedAt,
				Timestamps: models.Timestamps{
					CreatedAt: loggedAt,
					UpdatedAt: f.Between(loggedAt, now),
				},
			})
		}
	}
	if err := r.TimeEntries.CreateBatch(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to seed time entries: %w", err)
	}
	summary.add("time_entries", len(entries))

	return summary, nil
}
