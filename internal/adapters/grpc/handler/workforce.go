package handler

import (
	"context"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

// CreateEmployee は社員を登録します。
func (h *StaffingHandler) CreateEmployee(ctx context.Context, req *staffingv1.CreateEmployeeRequest) (*staffingv1.EmployeeResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	created, err := h.workforce.CreateEmployee(ctx, workforce.CreateEmployeeInput{
		Actor: a, FirstName: req.GetFirstName(), LastName: req.GetLastName(), Email: req.GetEmail(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.EmployeeResponse{Employee: toEmployeeMessage(created)}, nil
}

// GetEmployee は社員を取得します。
func (h *StaffingHandler) GetEmployee(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.EmployeeResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.workforce.GetEmployee(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.EmployeeResponse{Employee: toEmployeeMessage(found)}, nil
}

// RegisterAgencyEmployee は社員を派遣会社に所属させます。
func (h *StaffingHandler) RegisterAgencyEmployee(ctx context.Context, req *staffingv1.RegisterAgencyEmployeeRequest) (*staffingv1.AgencyEmployeeResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	payRate, err := parseDecimal("pay_rate", req.GetPayRate())
	if err != nil {
		return nil, err
	}
	created, err := h.workforce.RegisterAgencyEmployee(ctx, workforce.RegisterAgencyEmployeeInput{
		Actor:          a,
		AgencyID:       req.GetAgencyId(),
		EmployeeID:     req.GetEmployeeId(),
		PayRate:        payRate,
		EmploymentType: workforce.EmploymentType(req.GetEmploymentType()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.AgencyEmployeeResponse{AgencyEmployee: toAgencyEmployeeMessage(created)}, nil
}

// ChangeAgencyEmployeeStatus は雇用関係の状態を変更します。
func (h *StaffingHandler) ChangeAgencyEmployeeStatus(ctx context.Context, req *staffingv1.ChangeStatusRequest) (*staffingv1.AgencyEmployeeResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	updated, err := h.workforce.ChangeStatus(ctx, workforce.ChangeStatusInput{
		Actor: a, AgencyEmployeeID: req.GetId(), Status: workforce.Status(req.GetStatus()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.AgencyEmployeeResponse{AgencyEmployee: toAgencyEmployeeMessage(updated)}, nil
}

// GetAgencyEmployee は雇用関係を取得します。
func (h *StaffingHandler) GetAgencyEmployee(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.AgencyEmployeeResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.workforce.GetAgencyEmployee(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.AgencyEmployeeResponse{AgencyEmployee: toAgencyEmployeeMessage(found)}, nil
}

// ListAgencyEmployees は派遣会社の所属社員を返します。
func (h *StaffingHandler) ListAgencyEmployees(ctx context.Context, req *staffingv1.ListAgencyEmployeesRequest) (*staffingv1.ListAgencyEmployeesResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	in := workforce.ListAgencyEmployeesInput{
		Actor: a, AgencyID: req.GetAgencyId(), PageSize: int(req.GetPageSize()), PageToken: req.GetPageToken(),
	}
	if req.GetStatus() != "" {
		st := workforce.Status(req.GetStatus())
		in.Status = &st
	}
	res, err := h.workforce.ListAgencyEmployees(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	out := make([]*staffingv1.AgencyEmployeeMessage, 0, len(res.AgencyEmployees))
	for _, ae := range res.AgencyEmployees {
		out = append(out, toAgencyEmployeeMessage(ae))
	}
	return &staffingv1.ListAgencyEmployeesResponse{AgencyEmployees: out, NextPageToken: res.NextPageToken}, nil
}

// CreateContract は雇用主と派遣会社の契約を作成します。
func (h *StaffingHandler) CreateContract(ctx context.Context, req *staffingv1.CreateContractRequest) (*staffingv1.ContractResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", req.GetStartDate())
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDateValue("end_date", req.GetEndDate())
	if err != nil {
		return nil, err
	}
	created, err := h.contracts.CreateContract(ctx, contract.CreateContractInput{
		Actor: a, EmployerID: req.GetEmployerId(), AgencyID: req.GetAgencyId(), StartDate: start, EndDate: end,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ContractResponse{Contract: toContractMessage(created)}, nil
}

// ChangeContractStatus は契約の状態を変更します。
func (h *StaffingHandler) ChangeContractStatus(ctx context.Context, req *staffingv1.ChangeStatusRequest) (*staffingv1.ContractResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	updated, err := h.contracts.ChangeStatus(ctx, contract.ChangeStatusInput{Actor: a, ID: req.GetId(), Status: contract.Status(req.GetStatus())})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ContractResponse{Contract: toContractMessage(updated)}, nil
}

// GetContract は契約を取得します。
func (h *StaffingHandler) GetContract(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ContractResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.contracts.GetContract(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ContractResponse{Contract: toContractMessage(found)}, nil
}

// ListContracts は Actor が当事者の契約を返します。
func (h *StaffingHandler) ListContracts(ctx context.Context, req *staffingv1.ListContractsRequest) (*staffingv1.ListContractsResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	in := contract.ListContractsInput{Actor: a, PageSize: int(req.GetPageSize()), PageToken: req.GetPageToken()}
	if req.GetStatus() != "" {
		st := contract.Status(req.GetStatus())
		in.Status = &st
	}
	res, err := h.contracts.ListContracts(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	out := make([]*staffingv1.ContractMessage, 0, len(res.Contracts))
	for _, c := range res.Contracts {
		out = append(out, toContractMessage(c))
	}
	return &staffingv1.ListContractsResponse{Contracts: out, NextPageToken: res.NextPageToken}, nil
}

func toEmployeeMessage(e *workforce.Employee) *staffingv1.EmployeeMessage {
	return &staffingv1.EmployeeMessage{
		Id:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Status:    string(e.Status),
		CreatedAt: toTimestamp(e.CreatedAt),
		UpdatedAt: toTimestamp(e.UpdatedAt),
	}
}

func toAgencyEmployeeMessage(ae *workforce.AgencyEmployee) *staffingv1.AgencyEmployeeMessage {
	return &staffingv1.AgencyEmployeeMessage{
		Id:             ae.ID,
		AgencyId:       ae.AgencyID,
		EmployeeId:     ae.EmployeeID,
		PayRate:        ae.PayRate.String(),
		EmploymentType: string(ae.EmploymentType),
		Status:         string(ae.Status),
		CreatedAt:      toTimestamp(ae.CreatedAt),
		UpdatedAt:      toTimestamp(ae.UpdatedAt),
	}
}

func toContractMessage(c *contract.Contract) *staffingv1.ContractMessage {
	return &staffingv1.ContractMessage{
		Id:         c.ID,
		EmployerId: c.EmployerID,
		AgencyId:   c.AgencyID,
		Status:     string(c.Status),
		StartDate:  formatDate(c.StartDate),
		EndDate:    optionalDateValue(c.EndDate),
		CreatedAt:  toTimestamp(c.CreatedAt),
		UpdatedAt:  toTimestamp(c.UpdatedAt),
	}
}
