package employee

import (
	"context"

	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/validator"
)

const defaultBaseCommissionRate = 500 // 5.00%

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}

	return result, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	baseRate := int64(defaultBaseCommissionRate)
	if req.BaseCommissionRate != nil {
		baseRate = *req.BaseCommissionRate
	}

	newEmployee := employee.Employee{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		BaseCommissionRate: baseRate,
		EmploymentStatus:   employee.EmploymentStatusActive,
		TaxID:              req.TaxID,
		BankAccount:        req.BankAccount,
		BankRoutingNumber:  req.BankRoutingNumber,
	}
	if req.HireDate != nil {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		newEmployee.HireDate = &hireDate
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Existence check up front so partial updates against a missing row
	// surface a not-found instead of a silent no-op.
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(updated), nil
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	var hireDate *string
	if emp.HireDate != nil {
		str := emp.HireDate.Format("2006-01-02")
		hireDate = &str
	}

	return employee.EmployeeResponse{
		ID:                 emp.ID,
		FirstName:          emp.FirstName,
		LastName:           emp.LastName,
		Email:              emp.Email,
		Phone:              emp.Phone,
		Address:            emp.Address,
		City:               emp.City,
		State:              emp.State,
		ZipCode:            emp.ZipCode,
		BaseCommissionRate: emp.BaseCommissionRate,
		EmploymentStatus:   string(emp.EmploymentStatus),
		HireDate:           hireDate,
	}
}
