// Package test5 holds the second ticket-tracker schema. It splits ticket
// ownership into creator and assignee, adds user roles, and treats every
// row's updated_at as an optimistic concurrency token.
package test5

// All lists the schema's models, parents before children.
func All() []any {
	return []any{&User{}, &Project{}, &Ticket{}, &TimeEntry{}}
}
