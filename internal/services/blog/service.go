// Package blog implements the CRUD operations of the blog schema.
package blog

import (
	"context"
	"fmt"

	"github.com/yukikurage/demodb/internal/models"
	model "github.com/yukikurage/demodb/internal/models/blog"
	"github.com/yukikurage/demodb/internal/repository"
	repo "github.com/yukikurage/demodb/internal/repository/blog"
	"github.com/yukikurage/demodb/internal/services"
	"github.com/yukikurage/demodb/internal/validation"
)

// Service handles blog business logic
type Service struct {
	authors  repository.Store[model.Author]
	posts    repository.Store[model.Post]
	comments repository.Store[model.Comment]
	tags     repository.Store[model.Tag]
	queries  repo.Queries
}

// NewService creates a new Service
func NewService(r *repo.Repository) *Service {
	return &Service{
		authors:  r.Authors,
		posts:    r.Posts,
		comments: r.Comments,
		tags:     r.Tags,
		queries:  r,
	}
}

type AuthorInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

type TagInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type PostInput struct {
	AuthorID uint64 `json:"author_id" validate:"required"`
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
}

type CommentInput struct {
	PostID   uint64 `json:"post_id" validate:"required"`
	AuthorID uint64 `json:"author_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// Authors

func (s *Service) ListAuthors(ctx context.Context, filter string, page int) ([]model.Author, error) {
	return s.authors.List(ctx, filter, page)
}

func (s *Service) GetAuthor(ctx context.Context, id uint64) (*model.Author, error) {
	return s.authors.FindByID(ctx, id)
}

func (s *Service) LookupAuthors(ctx context.Context, query string) ([]models.Option, error) {
	return s.authors.Lookup(ctx, query)
}

func (s *Service) CreateAuthor(ctx context.Context, input AuthorInput) (*model.Author, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	author := &model.Author{Name: services.Clean(input.Name), Email: services.Clean(input.Email)}
	if err := s.authors.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id uint64, input AuthorInput) (*model.Author, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	author := &model.Author{Name: services.Clean(input.Name), Email: services.Clean(input.Email)}
	if err := s.authors.Replace(ctx, id, author); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id uint64) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	return nil
}

// Tags

func (s *Service) ListTags(ctx context.Context, filter string, page int) ([]model.Tag, error) {
	return s.tags.List(ctx, filter, page)
}

func (s *Service) GetTag(ctx context.Context, id uint64) (*model.Tag, error) {
	return s.tags.FindByID(ctx, id)
}

func (s *Service) LookupTags(ctx context.Context, query string) ([]models.Option, error) {
	return s.tags.Lookup(ctx, query)
}

func (s *Service) CreateTag(ctx context.Context, input TagInput) (*model.Tag, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	tag := &model.Tag{Name: services.Clean(input.Name)}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

func (s *Service) UpdateTag(ctx context.Context, id uint64, input TagInput) (*model.Tag, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	tag := &model.Tag{Name: services.Clean(input.Name)}
	if err := s.tags.Replace(ctx, id, tag); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return tag, nil
}

func (s *Service) DeleteTag(ctx context.Context, id uint64) error {
	if err := s.tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// Posts

func (s *Service) ListPosts(ctx context.Context, filter string, page int) ([]model.PostListItem, error) {
	return s.queries.ListPosts(ctx, filter, page)
}

func (s *Service) GetPost(ctx context.Context, id uint64) (*repo.PostDetail, error) {
	return s.queries.GetPost(ctx, id)
}

func (s *Service) LookupPosts(ctx context.Context, query string) ([]models.Option, error) {
	return s.posts.Lookup(ctx, query)
}

func (s *Service) CreatePost(ctx context.Context, input PostInput) (*model.Post, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	post := input.post()
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *Service) UpdatePost(ctx context.Context, id uint64, input PostInput) (*model.Post, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	post := input.post()
	if err := s.posts.Replace(ctx, id, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id uint64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (in PostInput) post() *model.Post {
	return &model.Post{AuthorID: in.AuthorID, Title: services.Clean(in.Title), Content: in.Content}
}

// AttachTag links a tag to a post
func (s *Service) AttachTag(ctx context.Context, postID, tagID uint64) error {
	if err := s.queries.AttachTag(ctx, postID, tagID); err != nil {
		return fmt.Errorf("failed to attach tag: %w", err)
	}
	return nil
}

// DetachTag removes a tag from a post
func (s *Service) DetachTag(ctx context.Context, postID, tagID uint64) error {
	if err := s.queries.DetachTag(ctx, postID, tagID); err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}
	return nil
}

// Comments

func (s *Service) ListComments(ctx context.Context, postID uint64) ([]model.Comment, error) {
	return s.queries.ListComments(ctx, postID)
}

func (s *Service) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	return s.comments.FindByID(ctx, id, "Author")
}

func (s *Service) CreateComment(ctx context.Context, input CommentInput) (*model.Comment, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	comment := &model.Comment{PostID: input.PostID, AuthorID: input.AuthorID, Content: input.Content}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *Service) UpdateComment(ctx context.Context, id uint64, input CommentInput) (*model.Comment, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	comment := &model.Comment{PostID: input.PostID, AuthorID: input.AuthorID, Content: input.Content}
	if err := s.comments.Replace(ctx, id, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, id uint64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
