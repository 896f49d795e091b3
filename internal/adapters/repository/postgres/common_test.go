package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

func TestTimeOfDayRoundTrip(t *testing.T) {
	t.Parallel()

	tod := usecase.TimeOfDay(9*60 + 30)
	param := timeOfDayParam(tod)
	if !param.Valid {
		t.Fatalf("expected valid pgtype.Time")
	}
	if got := timeOfDayFrom(param); got != tod {
		t.Fatalf("expected %s, got %s", tod, got)
	}
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	var p placeholders
	if p.where() != "" {
		t.Fatalf("expected empty where clause")
	}
	p.add("agency_id = ?", "a")
	p.add("status = ?", "active")
	limit := p.next(10)

	if got := p.where(); got != " WHERE agency_id = $1 AND status = $2" {
		t.Fatalf("unexpected where clause: %q", got)
	}
	if limit != "$3" || len(p.args) != 3 {
		t.Fatalf("unexpected placeholder %s with %d args", limit, len(p.args))
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items, token := paginate([]int{1, 2, 3}, 2, 4)
	if len(items) != 2 || token != "6" {
		t.Fatalf("expected 2 items and token 6, got %v %q", items, token)
	}

	items, token = paginate([]int{1}, 2, 0)
	if len(items) != 1 || token != "" {
		t.Fatalf("expected last page, got %v %q", items, token)
	}
}

func TestPgError(t *testing.T) {
	t.Parallel()

	code, constraint, ok := pgError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_email_key"})
	if !ok || code != uniqueViolationCode || constraint != "employees_email_key" {
		t.Fatalf("unexpected result: %s %s %v", code, constraint, ok)
	}
	if _, _, ok := pgError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to be a pg error")
	}
}

func TestTranslateNoRows(t *testing.T) {
	t.Parallel()

	notFound := errors.New("not found")
	if !errors.Is(translateNoRows(pgx.ErrNoRows, notFound), notFound) {
		t.Fatalf("expected not found mapping")
	}
	other := errors.New("other")
	if translateNoRows(other, notFound) != other {
		t.Fatalf("expected passthrough")
	}
}

func TestValidIDs(t *testing.T) {
	t.Parallel()

	if !validIDs("2f1a1c5e-7f3b-4f67-9a57-3c2e1e0c9b11", "6b0d8f3e-1c4a-4e1b-8f9d-2a7c5e3b1d44") {
		t.Fatalf("expected valid ids")
	}
	if validIDs("2f1a1c5e-7f3b-4f67-9a57-3c2e1e0c9b11", "shift-1") {
		t.Fatalf("expected invalid id to be rejected")
	}
}
