package seeder

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	model "github.com/yukikurage/demodb/internal/models/blog"
	repo "github.com/yukikurage/demodb/internal/repository/blog"
)

var tagNames = []string{
	"go", "databases", "testing", "devops", "security", "performance",
	"frontend", "backend", "cloud", "architecture", "tutorial", "career",
	"open-source", "tooling", "release-notes", "opinion",
}

// Blog seeds authors, tags, posts with their tag links, and comments.
func Blog(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	r := repo.New(db)
	f := NewFaker(opts.Seed)
	now := opts.now()
	mail := newEmails(f)
	var summary Summary

	authors := make([]model.Author, 10)
	for i := range authors {
		name := f.Name()
		authors[i] = model.Author{
			Name:       name,
			Email:      mail.For(name),
			Timestamps: stamps(f, now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0), now),
		}
	}
	if err := r.Authors.CreateBatch(ctx, authors); err != nil {
		return nil, fmt.Errorf("failed to seed authors: %w", err)
	}
	summary.add("authors", len(authors))

	names := PickN(f, tagNames, 12)
	tags := make([]model.Tag, len(names))
	for i, name := range names {
		tags[i] = model.Tag{
			Name:       name,
			Timestamps: stamps(f, now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0), now),
		}
	}
	if err := r.Tags.CreateBatch(ctx, tags); err != nil {
		return nil, fmt.Errorf("failed to seed tags: %w", err)
	}
	summary.add("tags", len(tags))

	var posts []model.Post
	for _, author := range authors {
		count := f.IntRange(1, 6)
		for i := 0; i < count; i++ {
			posts = append(posts, model.Post{
				AuthorID:   author.ID,
				Title:      strings.TrimSuffix(f.LoremIpsumSentence(f.IntRange(4, 8)), "."),
				Content:    f.Paragraphs(f.IntRange(2, 5)),
				Timestamps: stamps(f, author.CreatedAt, now.AddDate(0, 0, -1), now),
			})
		}
	}
	if err := r.Posts.CreateBatch(ctx, posts); err != nil {
		return nil, fmt.Errorf("failed to seed posts: %w", err)
	}
	summary.add("posts", len(posts))

	var comments []model.Comment
	var links []model.PostTag
	for _, post := range posts {
		for _, tag := range PickN(f, tags, f.IntRange(1, 3)) {
			links = append(links, model.PostTag{PostID: post.ID, TagID: tag.ID})
		}

		count := f.IntRange(0, 8)
		for i := 0; i < count; i++ {
			comments = append(comments, model.Comment{
				PostID:     post.ID,
				AuthorID:   Pick(f, authors).ID,
				Content:    f.LoremIpsumSentence(f.IntRange(6, 20)),
				Timestamps: stamps(f, post.CreatedAt, now, now),
			})
		}
	}
	if err := r.Comments.CreateBatch(ctx, comments); err != nil {
		return nil, fmt.Errorf("failed to seed comments: %w", err)
	}
	summary.add("comments", len(comments))

	if err := r.AttachTags(ctx, links); err != nil {
		return nil, fmt.Errorf("failed to seed post tags: %w", err)
	}
	summary.add("post_tags", len(links))

	return summary, nil
}
