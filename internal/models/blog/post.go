package blog

import (
	"time"

	"github.com/yukikurage/demodb/internal/models"
)

type Post struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	AuthorID uint64 `gorm:"not null;index" json:"author_id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	models.Timestamps

	// Relations
	Author   *Author   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	PostTags []PostTag `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post_tags,omitempty"`
}

// PostListItem is the row projection shown by the post list.
type PostListItem struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
