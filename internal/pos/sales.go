package pos

import (
	"go.uber.org/zap"
)

// SalesLedger is the append-only ordered sequence of sale records. Every
// append rewrites the whole persisted sequence; insertion order is the
// sequence's only order.
type SalesLedger struct {
	store  SalesStore
	logger *zap.Logger
}

// NewSalesLedger creates a SalesLedger over the given store.
func NewSalesLedger(store SalesStore, logger *zap.Logger) *SalesLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesLedger{
		store:  store,
		logger: logger,
	}
}

// Append adds record at the end of the sequence and persists it. The record
// is stored as given; duplicate submissions produce duplicate records.
func (l *SalesLedger) Append(record SaleRecord) error {
	sales, err := l.store.Load()
	if err != nil {
		return err
	}

	sales = append(sales, record)
	if err := l.store.Save(sales); err != nil {
		return err
	}

	l.logger.Info("sale recorded",
		zap.String("employee", record.Employee),
		zap.String("store", record.Store),
		zap.String("type", string(record.Type)),
		zap.String("product", record.Product),
		zap.String("sold", record.Sold.String()),
	)
	return nil
}

// All returns the full sequence in insertion order.
func (l *SalesLedger) All() ([]SaleRecord, error) {
	return l.store.Load()
}

// ByStore returns the subsequence of records for one store, order preserved.
func (l *SalesLedger) ByStore(store string) ([]SaleRecord, error) {
	sales, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	filtered := make([]SaleRecord, 0)
	for _, s := range sales {
		if s.Store == store {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// ByEmployee returns the subsequence of records for one employee, order
// preserved.
func (l *SalesLedger) ByEmployee(employee string) ([]SaleRecord, error) {
	sales, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	filtered := make([]SaleRecord, 0)
	for _, s := range sales {
		if s.Employee == employee {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Employees returns the distinct employee names present in the ledger, in
// first-seen order.
func (l *SalesLedger) Employees() ([]string, error) {
	sales, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	names := make([]string, 0)
	for _, s := range sales {
		if !seen[s.Employee] {
			seen[s.Employee] = true
			names = append(names, s.Employee)
		}
	}
	return names, nil
}
