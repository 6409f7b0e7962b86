package blog

import "github.com/yukikurage/demodb/internal/models"

type Tag struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	models.Timestamps

	// Relations
	PostTags []PostTag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

// PostTag links a post to a tag. The pair is the primary key.
type PostTag struct {
	PostID uint64 `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	TagID  uint64 `gorm:"primaryKey;autoIncrement:false;index" json:"tag_id"`

	// Relations
	Post *Post `gorm:"foreignKey:PostID" json:"-"`
	Tag  *Tag  `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}
