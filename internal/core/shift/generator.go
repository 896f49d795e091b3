package shift

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// SkipFunc は重複により生成を見送った日付を受け取ります。
type SkipFunc func(day time.Time, reason error)

// GenerateFromTemplateInput はテンプレート展開の入力です。
type GenerateFromTemplateInput struct {
	Actor      actor.Actor
	TemplateID string
	RangeStart time.Time
	RangeEnd   time.Time
}

// GenerateForAssignmentInput はアサインメント期間の展開入力です。範囲が未指定ならアサインメント期間全体です。
type GenerateForAssignmentInput struct {
	Actor        actor.Actor
	AssignmentID string
	RangeStart   time.Time
	RangeEnd     time.Time
}

// GenerateResult は一括生成の結果です。
type GenerateResult struct {
	Shifts  []*Shift
	Skipped []time.Time
	Events  []event.Event
}

type plan struct {
	assignment *assignment.Assignment
	template   *Template
	start      time.Time
	end        time.Time
	limit      int
	actorID    string
}

// FromTemplate はテンプレートに従って範囲内のシフトを 1 日ずつ生成する遅延シーケンスを返します。
// 各日は独立したトランザクションで社員ロックと重複判定を経て挿入され、重複する日は onSkip へ通知して読み飛ばします。
// シーケンスは呼び出しごとに生成済み件数を数え直すため、同じ範囲で再実行しても max_occurrences を超えません。
func (s *Service) FromTemplate(ctx context.Context, in GenerateFromTemplateInput, onSkip SkipFunc) iter.Seq2[*Shift, error] {
	return func(yield func(*Shift, error) bool) {
		p, err := s.templatePlan(ctx, in)
		if err != nil {
			yield(nil, err)
			return
		}
		for sh, err := range s.generate(ctx, p, onSkip) {
			if !yield(sh, err) || err != nil {
				return
			}
		}
	}
}

// GenerateFromTemplate は FromTemplate を最後まで評価し、見送った日付も併せて返します。
func (s *Service) GenerateFromTemplate(ctx context.Context, in GenerateFromTemplateInput) (*GenerateResult, error) {
	result := &GenerateResult{}
	seq := s.FromTemplate(ctx, in, func(day time.Time, _ error) {
		result.Skipped = append(result.Skipped, day)
	})
	if err := result.collect(seq, in.Actor.UserID); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateForAssignment はアサインメントの期間を募集の日次時間帯で毎日展開します。
func (s *Service) GenerateForAssignment(ctx context.Context, in GenerateForAssignmentInput) (*GenerateResult, error) {
	if strings.TrimSpace(in.AssignmentID) == "" {
		return nil, fmt.Errorf("assignment_id: %w", ErrInvalidID)
	}

	var a *assignment.Assignment
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		a, err = s.assignments.FindByID(txCtx, in.AssignmentID)
		return err
	}); err != nil {
		return nil, err
	}
	if err := in.Actor.RequireAgency(actor.PermManageShifts, a.AgencyID); err != nil {
		return nil, err
	}
	if !a.Schedulable() {
		return nil, ErrAssignmentClosed
	}
	if a.DailyStart == a.DailyEnd {
		return nil, ErrInvalidTime
	}
	start, end, err := clampRange(a, in.RangeStart, in.RangeEnd)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{}
	p := plan{assignment: a, start: start, end: end, limit: s.maxGenerated, actorID: in.Actor.UserID}
	seq := s.generate(ctx, p, func(day time.Time, _ error) {
		result.Skipped = append(result.Skipped, day)
	})
	if err := result.collect(seq, in.Actor.UserID); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *GenerateResult) collect(seq iter.Seq2[*Shift, error], actorID string) error {
	for sh, err := range seq {
		if err != nil {
			return err
		}
		r.Shifts = append(r.Shifts, sh)
		r.Events = append(r.Events, shiftEvent(event.ShiftCreated, sh, actorID, sh.CreatedAt))
	}
	return nil
}

func (s *Service) templatePlan(ctx context.Context, in GenerateFromTemplateInput) (plan, error) {
	if strings.TrimSpace(in.TemplateID) == "" {
		return plan{}, fmt.Errorf("template_id: %w", ErrInvalidID)
	}

	var (
		tmpl     *Template
		a        *assignment.Assignment
		existing int
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if tmpl, err = s.repo.FindTemplateByID(txCtx, in.TemplateID); err != nil {
			return err
		}
		if a, err = s.assignments.FindByID(txCtx, tmpl.AssignmentID); err != nil {
			return err
		}
		existing, err = s.repo.CountByTemplate(txCtx, tmpl.ID)
		return err
	}); err != nil {
		return plan{}, err
	}
	if err := in.Actor.RequireAgency(actor.PermManageShifts, a.AgencyID); err != nil {
		return plan{}, err
	}
	if !a.Schedulable() {
		return plan{}, ErrAssignmentClosed
	}
	start, end, err := clampRange(a, in.RangeStart, in.RangeEnd)
	if err != nil {
		return plan{}, err
	}

	limit := s.maxGenerated
	if tmpl.MaxOccurrences != nil {
		limit = min(limit, max(*tmpl.MaxOccurrences-existing, 0))
	}
	return plan{assignment: a, template: tmpl, start: start, end: end, limit: limit, actorID: in.Actor.UserID}, nil
}

func (s *Service) generate(ctx context.Context, p plan, onSkip SkipFunc) iter.Seq2[*Shift, error] {
	return func(yield func(*Shift, error) bool) {
		created := 0
		for day := range usecase.Days(p.start, p.end) {
			if created >= p.limit {
				return
			}
			pl := placement{
				assignment: p.assignment,
				day:        day,
				start:      p.assignment.DailyStart,
				end:        p.assignment.DailyEnd,
				rate:       p.assignment.AgreedRate,
				createdBy:  p.actorID,
			}
			if p.template != nil {
				if !ShouldGenerate(p.template, day) {
					continue
				}
				pl.start, pl.end, pl.templateID = p.template.StartTime, p.template.EndTime, p.template.ID
			}

			sh, err := s.place(ctx, pl)
			if errors.Is(err, domainerr.ErrAvailability) {
				s.logger.Debug("shift generation skipped conflicting day",
					zap.String("assignment_id", p.assignment.ID),
					zap.String("day", day.Format(usecase.DateLayout)),
					zap.Error(err),
				)
				if onSkip != nil {
					onSkip(day, err)
				}
				continue
			}
			if err != nil {
				s.logger.Error("shift generation failed",
					zap.String("assignment_id", p.assignment.ID),
					zap.String("day", day.Format(usecase.DateLayout)),
					zap.Error(err),
				)
				yield(nil, err)
				return
			}
			created++
			if !yield(sh, nil) {
				return
			}
		}
	}
}

// clampRange は要求範囲をアサインメント期間に収めます。ゼロ値はアサインメント側の端を使います。
func clampRange(a *assignment.Assignment, from, to time.Time) (time.Time, time.Time, error) {
	start, end := usecase.DateOf(a.StartDate), usecase.DateOf(a.EndDate)
	if !from.IsZero() && usecase.DateOf(from).After(start) {
		start = usecase.DateOf(from)
	}
	if !to.IsZero() && usecase.DateOf(to).Before(end) {
		end = usecase.DateOf(to)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrOutsideAssignment
	}
	return start, end, nil
}
