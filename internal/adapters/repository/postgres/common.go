package postgres

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	exclusionViolationCode  = "23P01"
)

// pgError は PostgreSQL のエラーであれば SQLSTATE と制約名を返します。
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// validID は UUID として解釈できる ID かを返します。不正な ID はクエリを発行せず NotFound として扱います。
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func validIDs(ids ...string) bool {
	for _, id := range ids {
		if !validID(id) {
			return false
		}
	}
	return true
}

// translateNoRows は行が無い場合に notFound を返します。
func translateNoRows(err, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}

func timeOfDayParam(t usecase.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * int64(time.Minute/time.Microsecond), Valid: true}
}

func timeOfDayFrom(t pgtype.Time) usecase.TimeOfDay {
	return usecase.TimeOfDay(t.Microseconds / int64(time.Minute/time.Microsecond))
}

func dateParam(t time.Time) time.Time {
	return usecase.DateOf(t)
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return usecase.DateOf(*value)
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func datePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	d := usecase.DateOf(v.Time)
	return &d
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}

// placeholders は WHERE 句と引数の組み立てを補助します。
type placeholders struct {
	conditions []string
	args       []any
}

func (p *placeholders) add(expr string, arg any) {
	p.args = append(p.args, arg)
	p.conditions = append(p.conditions, strings.ReplaceAll(expr, "?", "$"+strconv.Itoa(len(p.args))))
}

func (p *placeholders) next(arg any) string {
	p.args = append(p.args, arg)
	return "$" + strconv.Itoa(len(p.args))
}

func (p *placeholders) where() string {
	if len(p.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conditions, " AND ")
}

// paginate は limit+1 件取得した結果を切り詰め、次ページトークンを返します。
func paginate[T any](items []T, limit, offset int) ([]T, string) {
	token := usecase.NextPageToken(usecase.Page{Limit: limit, Offset: offset}, len(items))
	if token != "" {
		items = items[:limit]
	}
	return items, token
}
