package model

type Post struct {
	ID       uint64 `gorm:"primaryKey"`
	Title    string `gorm:"type:varchar(255);index:idx_title"`
	PostText string `gorm:"column:post_text;type:text"`
	Likes    int    `gorm:"not null;default:0"`
	UserID   uint64 `gorm:"not null;index:idx_user_id"`
}

func (Post) TableName() string {
	return "posts"
}
