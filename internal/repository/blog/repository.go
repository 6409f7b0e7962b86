// Package blog is the store access for the blog schema.
package blog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/demodb/internal/database"
	apierrors "github.com/yukikurage/demodb/internal/errors"
	model "github.com/yukikurage/demodb/internal/models/blog"
	"github.com/yukikurage/demodb/internal/repository"
)

type Repository struct {
	db *gorm.DB

	Authors  *repository.Table[model.Author, *model.Author]
	Posts    *repository.Table[model.Post, *model.Post]
	Comments *repository.Table[model.Comment, *model.Comment]
	Tags     *repository.Table[model.Tag, *model.Tag]
}

// PostDetail is a post with its author, tags and the number of comments.
type PostDetail struct {
	model.Post
	Tags         []model.Tag `json:"tags"`
	CommentCount int64       `json:"comment_count"`
}

// Queries defines the joined reads and tag links of the blog schema.
type Queries interface {
	ListPosts(ctx context.Context, filter string, page int) ([]model.PostListItem, error)
	GetPost(ctx context.Context, id uint64) (*PostDetail, error)
	ListComments(ctx context.Context, postID uint64) ([]model.Comment, error)
	AttachTag(ctx context.Context, postID, tagID uint64) error
	DetachTag(ctx context.Context, postID, tagID uint64) error
}

var _ Queries = (*Repository)(nil)

func New(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		Authors:  repository.NewTable[model.Author](db, "name", "name", "email"),
		Posts:    repository.NewTable[model.Post](db, "title", "title", "content"),
		Comments: repository.NewTable[model.Comment](db, "content"),
		Tags:     repository.NewTable[model.Tag](db, "name"),
	}
}

// ListPosts returns one page of posts whose title or author name contains
// filter, newest first.
func (r *Repository) ListPosts(ctx context.Context, filter string, page int) ([]model.PostListItem, error) {
	items := []model.PostListItem{}
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.title, authors.name AS author_name, posts.created_at").
		Joins("JOIN authors ON authors.id = posts.author_id").
		Scopes(database.Search(filter, "posts.title", "authors.name"), database.Paginate(page)).
		Order("posts.created_at DESC").Order("posts.id DESC").
		Scan(&items).Error
	if err != nil {
		return nil, repository.Translate(err)
	}
	return items, nil
}

// GetPost returns the post with its author and tags.
func (r *Repository) GetPost(ctx context.Context, id uint64) (*PostDetail, error) {
	post, err := r.Posts.FindByID(ctx, id, "Author")
	if err != nil {
		return nil, err
	}

	detail := &PostDetail{Post: *post}
	if detail.Tags, err = r.PostTags(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", id).
		Count(&detail.CommentCount).Error; err != nil {
		return nil, repository.Translate(err)
	}
	return detail, nil
}

// PostTags returns the tags linked to a post, by name.
func (r *Repository) PostTags(ctx context.Context, postID uint64) ([]model.Tag, error) {
	tags := []model.Tag{}
	err := r.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, repository.Translate(err)
	}
	return tags, nil
}

// ListComments returns the post's comments, oldest first.
func (r *Repository) ListComments(ctx context.Context, postID uint64) ([]model.Comment, error) {
	if _, err := r.Posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comments := []model.Comment{}
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at").Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, repository.Translate(err)
	}
	return comments, nil
}

// AttachTag links a tag to a post. Linking the same pair twice fails with
// ErrDuplicate.
func (r *Repository) AttachTag(ctx context.Context, postID, tagID uint64) error {
	link := model.PostTag{PostID: postID, TagID: tagID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&link).Error; err != nil {
		return repository.Translate(err)
	}
	return nil
}

// AttachTags links many pairs in one batch insert.
func (r *Repository) AttachTags(ctx context.Context, links []model.PostTag) error {
	if len(links) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&links, repository.BatchSize).Error
	})
	return repository.Translate(err)
}

// DetachTag removes the link between a post and a tag.
func (r *Repository) DetachTag(ctx context.Context, postID, tagID uint64) error {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND tag_id = ?", postID, tagID).
		Delete(&model.PostTag{})
	if result.Error != nil {
		return repository.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apierrors.ErrNotFound
	}
	return nil
}
