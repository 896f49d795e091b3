// Package actor は操作者（ロールとテナント）と権限表を定義します。
package actor

import (
	"fmt"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

// Role は閉じたロール列挙です。
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleAgencyAdmin   Role = "agency_admin"
	RoleAgent         Role = "agent"
	RoleEmployerAdmin Role = "employer_admin"
	RoleContact       Role = "contact"
	RoleEmployee      Role = "employee"
)

// ParseRole は文字列をロールへ変換します。
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleSuperAdmin, RoleAgencyAdmin, RoleAgent, RoleEmployerAdmin, RoleContact, RoleEmployee:
		return r, nil
	default:
		return "", fmt.Errorf("actor: unknown role %q: %w", raw, domainerr.ErrValidation)
	}
}

// Permission は操作能力です。
type Permission string

const (
	PermManageShiftRequests       Permission = "manage_shift_requests"
	PermRespondToRequests         Permission = "respond_to_requests"
	PermDecideResponses           Permission = "decide_responses"
	PermManageAssignments         Permission = "manage_assignments"
	PermManageShifts              Permission = "manage_shifts"
	PermRespondToOffers           Permission = "respond_to_offers"
	PermClockTime                 Permission = "clock_time"
	PermApproveTimesheetsAgency   Permission = "approve_timesheets_agency"
	PermApproveTimesheetsEmployer Permission = "approve_timesheets_employer"
	PermManageWorkforce           Permission = "manage_workforce"
	PermManageContracts           Permission = "manage_contracts"
	PermViewSchedule              Permission = "view_schedule"
	PermManageOwnAvailability     Permission = "manage_own_availability"
	PermDecideTimeOff             Permission = "decide_time_off"
)

var capabilities = map[Role]map[Permission]bool{
	RoleAgencyAdmin: {
		PermRespondToRequests:       true,
		PermManageAssignments:       true,
		PermManageShifts:            true,
		PermApproveTimesheetsAgency: true,
		PermManageWorkforce:         true,
		PermManageContracts:         true,
		PermViewSchedule:            true,
		PermDecideTimeOff:           true,
	},
	RoleAgent: {
		PermRespondToRequests:       true,
		PermManageAssignments:       true,
		PermManageShifts:            true,
		PermApproveTimesheetsAgency: true,
		PermViewSchedule:            true,
		PermDecideTimeOff:           true,
	},
	RoleEmployerAdmin: {
		PermManageShiftRequests:       true,
		PermDecideResponses:           true,
		PermManageAssignments:         true,
		PermApproveTimesheetsEmployer: true,
		PermManageContracts:           true,
		PermViewSchedule:              true,
	},
	RoleContact: {
		PermManageShiftRequests:       true,
		PermDecideResponses:           true,
		PermApproveTimesheetsEmployer: true,
		PermViewSchedule:              true,
	},
	RoleEmployee: {
		PermRespondToOffers:       true,
		PermClockTime:             true,
		PermViewSchedule:          true,
		PermManageOwnAvailability: true,
	},
}

// Can はロールが権限を持つかを返す純粋関数です。
func Can(role Role, perm Permission) bool {
	if role == RoleSuperAdmin {
		return true
	}
	return capabilities[role][perm]
}

// Actor は各ユースケースへ明示的に渡される操作者コンテキストです。
type Actor struct {
	UserID     string
	Role       Role
	AgencyID   string
	EmployerID string
	EmployeeID string
}

// ErrForbidden は権限不足を表します。
var ErrForbidden = domainerr.New(domainerr.ErrForbidden, "actor: forbidden")

// Require は権限を確認します。
func (a Actor) Require(perm Permission) error {
	if a.UserID == "" || !Can(a.Role, perm) {
		return fmt.Errorf("%w: %s lacks %s", ErrForbidden, a.Role, perm)
	}
	return nil
}

// IsSuperAdmin はテナント境界を越えられるかを返します。
func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// RequireAgency は権限に加えて操作対象の派遣会社に属しているかを確認します。
func (a Actor) RequireAgency(perm Permission, agencyID string) error {
	if err := a.Require(perm); err != nil {
		return err
	}
	if a.IsSuperAdmin() || (a.AgencyID != "" && a.AgencyID == agencyID) {
		return nil
	}
	return fmt.Errorf("%w: agency %s is outside actor scope", ErrForbidden, agencyID)
}

// RequireEmployer は権限に加えて操作対象の雇用主に属しているかを確認します。
func (a Actor) RequireEmployer(perm Permission, employerID string) error {
	if err := a.Require(perm); err != nil {
		return err
	}
	if a.IsSuperAdmin() || (a.EmployerID != "" && a.EmployerID == employerID) {
		return nil
	}
	return fmt.Errorf("%w: employer %s is outside actor scope", ErrForbidden, employerID)
}

// RequireEmployee は本人であるかを確認します。
func (a Actor) RequireEmployee(perm Permission, employeeID string) error {
	if err := a.Require(perm); err != nil {
		return err
	}
	if a.IsSuperAdmin() || (a.EmployeeID != "" && a.EmployeeID == employeeID) {
		return nil
	}
	return fmt.Errorf("%w: employee %s is outside actor scope", ErrForbidden, employeeID)
}

// RequireParty は派遣会社側・雇用主側のいずれかとして関与しているかを確認します。
func (a Actor) RequireParty(perm Permission, agencyID, employerID string) error {
	if err := a.Require(perm); err != nil {
		return err
	}
	switch {
	case a.IsSuperAdmin():
		return nil
	case a.AgencyID != "" && a.AgencyID == agencyID:
		return nil
	case a.EmployerID != "" && a.EmployerID == employerID:
		return nil
	default:
		return fmt.Errorf("%w: record is outside actor scope", ErrForbidden)
	}
}
