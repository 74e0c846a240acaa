package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// stubListService 记录收到的ListParams,返回固定数据
type stubListService struct {
	book.Service
	gotParams book.ListParams
	books     []*book.Book
	total     int64
}

func (s *stubListService) ListBooks(_ context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	s.gotParams = params
	return s.books, s.total, nil
}

func TestListBooksUseCase_Clamping(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"缺省值", 0, 0, 1, 10},
		{"负数页码钳制为1", -3, 20, 1, 20},
		{"超大页容量钳制为100", 1, 500, 1, 100},
		{"合法值原样透传", 4, 25, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubListService{}
			uc := NewListBooksUseCase(stub)

			_, err := uc.Execute(ctx, ListBooksRequest{Page: tc.page, PageSize: tc.pageSize})
			require.NoError(t, err)

			assert.Equal(t, tc.wantPage, stub.gotParams.Page)
			assert.Equal(t, tc.wantPageSize, stub.gotParams.PageSize)
		})
	}
}

func TestListBooksUseCase_TotalPages(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name           string
		total          int64
		pageSize       int
		wantTotalPages int
	}{
		{"整除", 30, 10, 3},
		{"余数向上取整", 31, 10, 4},
		{"空结果零页", 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubListService{total: tc.total}
			uc := NewListBooksUseCase(stub)

			result, err := uc.Execute(ctx, ListBooksRequest{Page: 1, PageSize: tc.pageSize})
			require.NoError(t, err)

			assert.Equal(t, tc.wantTotalPages, result.TotalPages)
			assert.Equal(t, tc.total, result.Total)
		})
	}
}

func TestListBooksUseCase_AuthorFilterPassthrough(t *testing.T) {
	stub := &stubListService{}
	uc := NewListBooksUseCase(stub)

	_, err := uc.Execute(context.Background(), ListBooksRequest{Author: "fitz"})
	require.NoError(t, err)
	assert.Equal(t, "fitz", stub.gotParams.Author)
}
