package employee

import (
	"context"
	"testing"

	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = uuid.New().String()
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	e, ok := f.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.BaseCommissionRate != nil {
		e.BaseCommissionRate = *req.BaseCommissionRate
	}
	if req.EmploymentStatus != nil {
		e.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}
	f.employees[req.ID] = e
	return nil
}

func TestCreateEmployeeDefaults(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Mia",
		LastName:  "Chen",
		Email:     "mia@brokerage.test",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(500), resp.BaseCommissionRate, "commission rate should default to 5%")
	assert.Equal(t, "active", resp.EmploymentStatus)
}

func TestCreateEmployeeExplicitRate(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	rate := int64(325)
	hireDate := "2024-06-01"
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName:          "Mia",
		LastName:           "Chen",
		Email:              "mia@brokerage.test",
		BaseCommissionRate: &rate,
		HireDate:           &hireDate,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(325), resp.BaseCommissionRate)
	require.NotNil(t, resp.HireDate)
	assert.Equal(t, "2024-06-01", *resp.HireDate)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Mia",
		LastName:  "Chen",
		Email:     "not-an-email",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "email")
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	name := "Renamed"
	_, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:        uuid.New().String(),
		FirstName: &name,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployeeStatus(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	svc := NewEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Mia",
		LastName:  "Chen",
		Email:     "mia@brokerage.test",
	})
	require.NoError(t, err)

	status := "suspended"
	updated, err := svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:               created.ID,
		EmploymentStatus: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "suspended", updated.EmploymentStatus)
}
