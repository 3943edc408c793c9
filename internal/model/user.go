package model

type User struct {
	ID       uint64  `gorm:"primaryKey"`
	Name     string  `gorm:"column:username;type:varchar(255);index:idx_username"`
	IsAdmin  bool    `gorm:"not null;default:false"`
	ImageURL *string `gorm:"column:image_url;type:varchar(1024)"`

	// 关联关系
	Posts []Post `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
