package usecase

import (
	"strconv"
	"strings"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

var (
	ErrInvalidPageSize  = domainerr.New(domainerr.ErrValidation, "invalid page size")
	ErrInvalidPageToken = domainerr.New(domainerr.ErrValidation, "invalid page token")
)

// Page は一覧取得の limit/offset です。
type Page struct {
	Limit  int
	Offset int
}

// ParsePage はページサイズとページトークンを検証します。トークンは次のオフセットの 10 進表記です。
func ParsePage(pageSize int, token string) (Page, error) {
	limit := pageSize
	if limit <= 0 {
		limit = defaultListPageSize
	}
	if limit > maxListPageSize {
		return Page{}, ErrInvalidPageSize
	}

	if strings.TrimSpace(token) == "" {
		return Page{Limit: limit}, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return Page{}, ErrInvalidPageToken
	}
	return Page{Limit: limit, Offset: offset}, nil
}

// NextPageToken は limit+1 件取得した結果から次ページのトークンを返します。
func NextPageToken(p Page, fetched int) string {
	if fetched <= p.Limit {
		return ""
	}
	return strconv.Itoa(p.Offset + p.Limit)
}
