package actor

import (
	"errors"
	"testing"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

func TestCan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleSuperAdmin, PermClockTime, true},
		{RoleAgencyAdmin, PermRespondToRequests, true},
		{RoleAgencyAdmin, PermDecideResponses, false},
		{RoleAgent, PermManageWorkforce, false},
		{RoleEmployerAdmin, PermDecideResponses, true},
		{RoleContact, PermManageContracts, false},
		{RoleEmployee, PermRespondToOffers, true},
		{RoleEmployee, PermApproveTimesheetsAgency, false},
		{Role("unknown"), PermViewSchedule, false},
	}

	for _, tt := range tests {
		if got := Can(tt.role, tt.perm); got != tt.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	if r, err := ParseRole("agent"); err != nil || r != RoleAgent {
		t.Fatalf("unexpected result %v %v", r, err)
	}
	if _, err := ParseRole("root"); !errors.Is(err, domainerr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestActor_RequireAgency(t *testing.T) {
	t.Parallel()

	a := Actor{UserID: "u-1", Role: RoleAgent, AgencyID: "agency-a"}

	if err := a.RequireAgency(PermRespondToRequests, "agency-a"); err != nil {
		t.Fatalf("expected access, got %v", err)
	}
	if err := a.RequireAgency(PermRespondToRequests, "agency-b"); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign agency, got %v", err)
	}
	if err := a.RequireAgency(PermDecideResponses, "agency-a"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for missing permission, got %v", err)
	}

	admin := Actor{UserID: "root", Role: RoleSuperAdmin}
	if err := admin.RequireAgency(PermRespondToRequests, "agency-b"); err != nil {
		t.Fatalf("super admin should bypass tenancy, got %v", err)
	}
}

func TestActor_RequireWithoutUser(t *testing.T) {
	t.Parallel()

	if err := (Actor{Role: RoleSuperAdmin}).Require(PermViewSchedule); !errors.Is(err, ErrForbidden) {
		t.Fatalf("anonymous actor must be rejected, got %v", err)
	}
}

func TestActor_RequireParty(t *testing.T) {
	t.Parallel()

	employer := Actor{UserID: "u-2", Role: RoleEmployerAdmin, EmployerID: "emp-co"}
	if err := employer.RequireParty(PermManageAssignments, "agency-a", "emp-co"); err != nil {
		t.Fatalf("expected employer access, got %v", err)
	}
	if err := employer.RequireParty(PermManageAssignments, "agency-a", "other"); err == nil {
		t.Fatalf("expected forbidden")
	}
}
