package dto

// UserDTO 用户
type UserDTO struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	IsAdmin  bool    `json:"is_admin"`
	ImageURL *string `json:"image_url"`
}

// UserCreateDTO 创建/全量更新用户
type UserCreateDTO struct {
	Name     *string `json:"name" binding:"required"`
	IsAdmin  bool    `json:"is_admin"`
	ImageURL *string `json:"image_url"`
}

// UserSearchDTO 按名称子串过滤
type UserSearchDTO struct {
	Name string `form:"name"`
}
