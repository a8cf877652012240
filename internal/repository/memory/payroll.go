package memory

import (
	"context"
	"sync"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
)

type PayrollRepository struct {
	mu      sync.RWMutex
	records []payroll.PayrollRecord
}

func NewPayrollRepository(seed []payroll.PayrollRecord) *PayrollRepository {
	records := make([]payroll.PayrollRecord, len(seed))
	copy(records, seed)
	return &PayrollRepository{records: records}
}

func (r *PayrollRepository) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payroll.PayrollRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *PayrollRepository) GetByEmployeeID(ctx context.Context, employeeID int) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
}
