// Package jirakiller holds the ticket-tracker schema: users, projects,
// tickets and the time logged against them.
package jirakiller

// All lists the schema's models, parents before children.
func All() []any {
	return []any{&User{}, &Project{}, &Ticket{}, &TimeLog{}}
}
