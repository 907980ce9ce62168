package transaction

import (
	"context"
	"time"

	"github.com/brokerpay/payroll-backend-go/internal/domain/employee"
	"github.com/brokerpay/payroll-backend-go/internal/domain/payroll"
	"github.com/brokerpay/payroll-backend-go/internal/domain/transaction"
)

type TransactionServiceImpl struct {
	transactionRepo transaction.TransactionRepository
	employeeRepo    employee.EmployeeRepository
}

func NewTransactionService(
	transactionRepo transaction.TransactionRepository,
	employeeRepo employee.EmployeeRepository,
) transaction.TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		employeeRepo:    employeeRepo,
	}
}

func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, id string) (transaction.TransactionResponse, error) {
	t, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	return mapToTransactionResponse(t), nil
}

func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, employeeID *string) ([]transaction.TransactionResponse, error) {
	transactions, err := s.transactionRepo.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, mapToTransactionResponse(t))
	}

	return result, nil
}

func (s *TransactionServiceImpl) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return transaction.TransactionResponse{}, err
	}

	created, err := s.transactionRepo.Create(ctx, transaction.Transaction{
		EmployeeID:      req.EmployeeID,
		PropertyAddress: req.PropertyAddress,
		PropertyCity:    req.PropertyCity,
		PropertyState:   req.PropertyState,
		PropertyZip:     req.PropertyZip,
		SaleAmount:      req.SaleAmount,
		CommissionRate:  req.CommissionRate,
		// The commission snapshot is taken once here; later rate changes do
		// not revise it unless sale amount and rate are updated together.
		CommissionAmount: payroll.CalculateCommission(req.SaleAmount, req.CommissionRate),
		TransactionDate:  req.TransactionDateTime(),
		Status:           transaction.StatusPending,
		Notes:            req.Notes,
	})
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	return mapToTransactionResponse(created), nil
}

func (s *TransactionServiceImpl) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	if _, err := s.transactionRepo.GetByID(ctx, req.ID); err != nil {
		return transaction.TransactionResponse{}, err
	}

	if req.SaleAmount != nil && req.CommissionRate != nil {
		recomputed := payroll.CalculateCommission(*req.SaleAmount, *req.CommissionRate)
		req.CommissionAmount = &recomputed
	}

	if err := s.transactionRepo.Update(ctx, req); err != nil {
		return transaction.TransactionResponse{}, err
	}

	updated, err := s.transactionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	return mapToTransactionResponse(updated), nil
}

func mapToTransactionResponse(t transaction.Transaction) transaction.TransactionResponse {
	return transaction.TransactionResponse{
		ID:               t.ID,
		EmployeeID:       t.EmployeeID,
		PropertyAddress:  t.PropertyAddress,
		PropertyCity:     t.PropertyCity,
		PropertyState:    t.PropertyState,
		PropertyZip:      t.PropertyZip,
		SaleAmount:       t.SaleAmount,
		CommissionRate:   t.CommissionRate,
		CommissionAmount: t.CommissionAmount,
		TransactionDate:  t.TransactionDate.Format(time.RFC3339),
		Status:           string(t.Status),
		Notes:            t.Notes,
	}
}
