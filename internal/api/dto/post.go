package dto

// PostDTO 帖子
type PostDTO struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	PostText string `json:"post_text"`
	UserID   uint64 `json:"user_id"`
	Likes    int    `json:"likes"`
}

// PostCreateDTO 创建/全量更新帖子
type PostCreateDTO struct {
	Title    *string `json:"title" binding:"required"`
	PostText *string `json:"post_text" binding:"required"`
	UserID   *uint64 `json:"user_id" binding:"required"`
}

// PostSearchDTO 按标题子串过滤
type PostSearchDTO struct {
	Title string `form:"title"`
}
