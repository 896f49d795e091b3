package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind は請求当事者の種別です。
type PartyKind string

const (
	PartyAgency   PartyKind = "agency"
	PartyEmployer PartyKind = "employer"
	PartyPlatform PartyKind = "platform"
)

// BillableParty は請求の送り手・受け手です。Platform は ID を持ちません。
type BillableParty struct {
	Kind PartyKind
	ID   string
}

// Agency は派遣会社の当事者を返します。
func Agency(id string) BillableParty { return BillableParty{Kind: PartyAgency, ID: id} }

// Employer は雇用主の当事者を返します。
func Employer(id string) BillableParty { return BillableParty{Kind: PartyEmployer, ID: id} }

// Platform はプラットフォーム運営者を返します。
func Platform() BillableParty { return BillableParty{Kind: PartyPlatform} }

func (p BillableParty) String() string {
	if p.Kind == PartyPlatform {
		return string(PartyPlatform)
	}
	return fmt.Sprintf("%s:%s", p.Kind, p.ID)
}

// Valid は種別と ID の組み合わせが正しいかを返します。
func (p BillableParty) Valid() bool {
	switch p.Kind {
	case PartyPlatform:
		return p.ID == ""
	case PartyAgency, PartyEmployer:
		return p.ID != ""
	default:
		return false
	}
}

// InvoiceStatus は請求書の状態です。
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceFailed  InvoiceStatus = "failed"
)

// Invoice は承認済みタイムシートから起こされる請求です。
type Invoice struct {
	ID          string
	TimesheetID string
	From        BillableParty
	To          BillableParty
	Hours       decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	Status      InvoiceStatus
	ProcessorID string
	FeeAmount   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayrollStatus は給与明細の状態です。
type PayrollStatus string

const (
	PayrollPending PayrollStatus = "pending"
	PayrollPaid    PayrollStatus = "paid"
)

// Payroll は派遣会社から社員への支払い明細です。
type Payroll struct {
	ID          string
	TimesheetID string
	AgencyID    string
	EmployeeID  string
	Hours       decimal.Decimal
	PayRate     decimal.Decimal
	GrossAmount decimal.Decimal
	Status      PayrollStatus
	CreatedAt   time.Time
}

// Payout は期間内の未払い給与の集計です。
type Payout struct {
	AgencyID    string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Total       decimal.Decimal
	PayrollIDs  []string
}

// Source は精算に必要なタイムシートとアサインメントの値です。
type Source struct {
	TimesheetID     string
	TimesheetStatus string
	AssignmentID    string
	AgencyID        string
	EmployerID      string
	EmployeeID      string
	Hours           decimal.Decimal
	AgreedRate      decimal.Decimal
	PayRate         decimal.Decimal
	MarkupAmount    decimal.Decimal
}

// PaymentResult は決済事業者から返る処理結果です。
type PaymentResult struct {
	ProcessorID string
	Status      InvoiceStatus
	FeeAmount   decimal.Decimal
}
