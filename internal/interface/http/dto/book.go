package dto

// CreateBookRequest HTTP创建请求
// validator tag说明:
// - required: 必填字段
// - max: 最大长度
// description缺失/null均表示无描述
type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required,max=200" example:"Dune"`
	Author      string  `json:"author" binding:"required,max=100" example:"Frank Herbert"`
	Description *string `json:"description" binding:"omitempty,max=1000" example:"A science fiction classic"`
}

// UpdateBookRequest HTTP全量更新请求(PUT)
// title/author必填,description为null/缺失时清空描述
type UpdateBookRequest struct {
	Title       string  `json:"title" binding:"required,max=200" example:"Dune"`
	Author      string  `json:"author" binding:"required,max=100" example:"Frank Herbert"`
	Description *string `json:"description" binding:"omitempty,max=1000" example:"A science fiction classic"`
}

// PatchBookRequest HTTP部分更新请求(PATCH)
// 所有字段可选,只应用请求中提供的字段
// 注意:JSON null与字段缺失等价,均视为"未提供"(清空描述走PUT)
type PatchBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200" example:"Dune Messiah"`
	Author      *string `json:"author" binding:"omitempty,min=1,max=100" example:"Frank Herbert"`
	Description *string `json:"description" binding:"omitempty,max=1000" example:"The sequel"`
}

// ListBooksRequest HTTP列表查询参数
// page/page_size超出范围被钳制(page<1→1, page_size∈[1,100],默认10)
// 非数字值是400
type ListBooksRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"10"`
	Author   string `form:"author" binding:"omitempty,max=100" example:"fitz"`
}

// AuthorStatsRequest HTTP作者统计查询参数
// min_count<1时钳制为1
type AuthorStatsRequest struct {
	MinCount int `form:"min_count" example:"2"`
}

// BulkCreateRequest HTTP批量创建请求
// 整批在一个事务中执行,任意一条失败则全部回滚
type BulkCreateRequest struct {
	Items []CreateBookRequest `json:"items" binding:"required,min=1,dive"`
}
