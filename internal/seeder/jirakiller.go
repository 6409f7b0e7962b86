package seeder

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/models"
	model "github.com/yukikurage/demodb/internal/models/jirakiller"
	repo "github.com/yukikurage/demodb/internal/repository/jirakiller"
	"github.com/yukikurage/demodb/internal/services"
)

var jiraKillerProjectNames = []string{
	"Customer Portal Redesign", "Mobile App Development", "Data Migration Project",
	"API Integration Platform", "Security Audit Implementation", "Cloud Infrastructure Setup",
	"E-commerce Platform", "Analytics Dashboard", "Payment Gateway Integration",
	"Inventory Management System", "HR Management Suite", "Marketing Automation Tool",
}

var ticketTitles = []string{
	"Fix login authentication bug", "Update user profile page", "Implement search functionality",
	"Database optimization needed", "Add export to PDF feature", "Mobile responsive issues",
	"Performance improvements required", "Security vulnerability patch", "API endpoint not responding",
	"Data validation errors", "Email notifications not sending", "Dashboard loading slowly",
	"Integration test failures", "Memory leak in production", "Update documentation",
	"Refactor legacy code", "Add unit tests", "Deploy to staging environment",
	"Configure CI/CD pipeline", "Migrate to new database", "Update third-party libraries",
	"Fix cross-browser compatibility", "Add user permissions", "Implement caching strategy",
}

// JiraKiller seeds users, projects, tickets and time logs.
func JiraKiller(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	r := repo.New(db)
	f := NewFaker(opts.Seed)
	now := opts.now()
	mail := newEmails(f)
	var summary Summary

	users := make([]model.User, 25)
	for i := range users {
		name := f.Name()
		users[i] = model.User{
			Name:       name,
			Email:      mail.For(name),
			Timestamps: stamps(f, now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0), now),
		}
	}
	if err := r.Users.CreateBatch(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	summary.add("users", len(users))

	projects := make([]model.Project, 12)
	for i := range projects {
		start := f.Between(now.AddDate(0, -18, 0), now.AddDate(0, -3, 0))
		p := model.Project{
			Name:        Pick(f, jiraKillerProjectNames) + " " + f.Code(3),
			Description: ptr(f.Paragraphs(1)),
			StartDate:   ptr(start),
			Timestamps:  stamps(f, start, now.AddDate(0, -2, 0), now),
		}
		if f.Chance(0.7) {
			p.EndDate = ptr(f.Between(start.AddDate(0, 1, 0), now.AddDate(0, 6, 0)))
		}
		projects[i] = p
	}
	if err := r.Projects.CreateBatch(ctx, projects); err != nil {
		return nil, fmt.Errorf("failed to seed projects: %w", err)
	}
	summary.add("projects", len(projects))

	var tickets []model.Ticket
	for _, project := range projects {
		count := f.IntRange(8, 30)
		for i := 0; i < count; i++ {
			ts := stamps(f, project.CreatedAt, now.AddDate(0, 0, -1), now)
			t := model.Ticket{
				ProjectID:   project.ID,
				Title:       Pick(f, ticketTitles) + " - " + f.Code(4),
				Description: ptr(f.Paragraphs(f.IntRange(1, 3))),
				Priority:    Pick(f, model.Priorities),
				Status:      Pick(f, model.Statuses),
				Timestamps:  ts,
			}
			if f.Chance(0.85) {
				t.AssignedUserID = ptr(Pick(f, users).ID)
			}
			if f.Chance(0.6) {
				t.DueDate = ptr(f.Between(ts.CreatedAt.AddDate(0, 0, 1), now.AddDate(0, 2, 0)))
			}
			tickets = append(tickets, t)
		}
	}
	if err := r.Tickets.CreateBatch(ctx, tickets); err != nil {
		return nil, fmt.Errorf("failed to seed tickets: %w", err)
	}
	summary.add("tickets", len(tickets))

	var logs []model.TimeLog
	for _, ticket := range tickets {
		if ticket.AssignedUserID == nil || !ticket.Status.HasWorkLogged() {
			continue
		}

		// The assignee plus a random subset of everyone else
		var workers []uint64
		for _, u := range users {
			if u.ID == *ticket.AssignedUserID || f.Chance(0.3) {
				workers = append(workers, u.ID)
			}
		}

		count := f.IntRange(1, 8)
		for i := 0; i < count; i++ {
			loggedAt := f.Between(ticket.CreatedAt, ticket.UpdatedAt)
			logs = append(logs, model.TimeLog{
				TicketID: ticket.ID,
				UserID:   Pick(f, workers),
				Hours:    services.RoundHours(f.Float64Range(0.5, 8.0), 2),
				LoggedAt: loggedAt,
				Timestamps: models.Timestamps{
					CreatedAt: loggedAt,
					UpdatedAt: f.Between(loggedAt, now),
				},
			})
		}
	}
	if err := r.TimeLogs.CreateBatch(ctx, logs); err != nil {
		return nil, fmt.Errorf("failed to seed time logs: %w", err)
	}
	summary.add("time_logs", len(logs))

	return summary, nil
}
