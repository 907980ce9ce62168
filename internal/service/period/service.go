package period

import (
	"context"

	"github.com/brokerpay/payroll-backend-go/internal/domain/period"
)

type PayrollPeriodServiceImpl struct {
	periodRepo period.PayrollPeriodRepository
}

func NewPayrollPeriodService(periodRepo period.PayrollPeriodRepository) period.PayrollPeriodService {
	return &PayrollPeriodServiceImpl{periodRepo: periodRepo}
}

func (s *PayrollPeriodServiceImpl) GetPeriod(ctx context.Context, id string) (period.PayrollPeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	return mapToPeriodResponse(p), nil
}

func (s *PayrollPeriodServiceImpl) ListPeriods(ctx context.Context) ([]period.PayrollPeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]period.PayrollPeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToPeriodResponse(p))
	}

	return result, nil
}

func (s *PayrollPeriodServiceImpl) CreatePeriod(ctx context.Context, req period.CreatePayrollPeriodRequest) (period.PayrollPeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	start, end := req.Dates()
	created, err := s.periodRepo.Create(ctx, period.PayrollPeriod{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    period.StatusOpen,
	})
	if err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	return mapToPeriodResponse(created), nil
}

func (s *PayrollPeriodServiceImpl) UpdatePeriod(ctx context.Context, req period.UpdatePayrollPeriodRequest) (period.PayrollPeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	if _, err := s.periodRepo.GetByID(ctx, req.ID); err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	if err := s.periodRepo.Update(ctx, req); err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	updated, err := s.periodRepo.GetByID(ctx, req.ID)
	if err != nil {
		return period.PayrollPeriodResponse{}, err
	}

	return mapToPeriodResponse(updated), nil
}

func mapToPeriodResponse(p period.PayrollPeriod) period.PayrollPeriodResponse {
	return period.PayrollPeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
	}
}
