package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
// 只做协议翻译:绑定参数 → 调用用例 → 映射状态码,不包含业务逻辑
type BookHandler struct {
	createBook  *appbook.CreateBookUseCase
	getBook     *appbook.GetBookUseCase
	listBooks   *appbook.ListBooksUseCase
	updateBook  *appbook.UpdateBookUseCase
	patchBook   *appbook.PatchBookUseCase
	deleteBook  *appbook.DeleteBookUseCase
	authorStats *appbook.AuthorStatsUseCase
	bulkCreate  *appbook.BulkCreateUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBook *appbook.CreateBookUseCase,
	getBook *appbook.GetBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	updateBook *appbook.UpdateBookUseCase,
	patchBook *appbook.PatchBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	authorStats *appbook.AuthorStatsUseCase,
	bulkCreate *appbook.BulkCreateUseCase,
) *BookHandler {
	return &BookHandler{
		createBook:  createBook,
		getBook:     getBook,
		listBooks:   listBooks,
		updateBook:  updateBook,
		patchBook:   patchBook,
		deleteBook:  deleteBook,
		authorStats: authorStats,
		bulkCreate:  bulkCreate,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  创建新图书,书名全局唯一
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} appbook.BookResult
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      409 {object} response.ErrorBody "书名已存在"
// @Router       /items/ [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页查询图书,可按作者过滤(大小写不敏感子串匹配)
// @Tags         items
// @Produce      json
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量(1-100,默认10)"
// @Param        author query string false "作者过滤"
// @Success      200 {object} appbook.ListBooksResult
// @Failure      400 {object} response.ErrorBody "查询参数错误"
// @Router       /items/ [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, "invalid query params: "+err.Error())
		return
	}

	result, err := h.listBooks.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Author:   req.Author,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         items
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} appbook.BookResult
// @Failure      400 {object} response.ErrorBody "ID格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /items/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateBook 全量更新图书
// @Summary      全量更新图书
// @Description  替换全部可变字段,description为null时清空描述
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} appbook.BookResult
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      409 {object} response.ErrorBody "书名已存在"
// @Router       /items/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateBook.Execute(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// PatchBook 部分更新图书
// @Summary      部分更新图书
// @Description  只更新请求中提供的字段
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.PatchBookRequest true "要更新的字段"
// @Success      200 {object} appbook.BookResult
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      409 {object} response.ErrorBody "书名已存在"
// @Router       /items/{id} [patch]
func (h *BookHandler) PatchBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.patchBook.Execute(c.Request.Context(), id, appbook.PatchBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  物理删除,不可恢复;重复删除返回404
// @Tags         items
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      400 {object} response.ErrorBody "ID格式错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /items/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AuthorStats 作者统计
// @Summary      作者统计
// @Description  按作者分组计数,保留计数>=min_count的分组,按计数降序返回
// @Tags         items
// @Produce      json
// @Param        min_count query int false "最小计数(默认1)"
// @Success      200 {array} appbook.AuthorCountResult
// @Failure      400 {object} response.ErrorBody "查询参数错误"
// @Router       /items/stats/authors [get]
func (h *BookHandler) AuthorStats(c *gin.Context) {
	var req dto.AuthorStatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, "invalid query params: "+err.Error())
		return
	}

	result, err := h.authorStats.Execute(c.Request.Context(), req.MinCount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// BulkCreate 批量创建图书
// @Summary      批量创建图书
// @Description  整批在一个事务中执行;任意一条违反约束则全部回滚,不持久化任何行
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkCreateRequest true "图书列表"
// @Success      201 {array} appbook.BookResult
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      409 {object} response.ErrorBody "书名已存在(整批回滚)"
// @Router       /items/bulk [post]
func (h *BookHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body: "+err.Error())
		return
	}

	items := make([]appbook.CreateBookRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = appbook.CreateBookRequest{
			Title:       item.Title,
			Author:      item.Author,
			Description: item.Description,
		}
	}

	result, err := h.bulkCreate.Execute(c.Request.Context(), appbook.BulkCreateRequest{Items: items})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// parseID 解析路径中的图书ID,非正整数返回400
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ValidationError(c, "invalid book id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}
