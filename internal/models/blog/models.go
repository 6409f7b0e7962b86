// Package blog holds the blog schema: authors, their posts and comments,
// and tags linked to posts through post_tags.
package blog

// All lists the schema's models, parents before children.
func All() []any {
	return []any{&Author{}, &Tag{}, &Post{}, &Comment{}, &PostTag{}}
}
