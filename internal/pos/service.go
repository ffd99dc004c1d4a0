package pos

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrValidation is returned for malformed submissions: empty names, unknown
// stores, out-of-range quantities or prices. Nothing is persisted when a
// submission fails validation.
var ErrValidation = errors.New("invalid submission")

// Form input bounds for quantities and prices.
const (
	MaxSaleQuantity = 100
	MaxRestockQty   = 500
	maxPrice        = 10000
)

var maxPriceDec = decimal.NewFromInt(maxPrice)

// SaleInput is a submitted sale form, not yet validated.
type SaleInput struct {
	Employee      string
	Store         string
	Type          SaleType
	Product       string
	Quantity      int
	Cost          decimal.Decimal
	Sold          decimal.Decimal
	PaymentMethod PaymentMethod
}

// Service runs the submission flow over the two ledgers.
type Service struct {
	inventory *InventoryLedger
	sales     *SalesLedger
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new Service.
func NewService(inventory *InventoryLedger, sales *SalesLedger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		inventory: inventory,
		sales:     sales,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates in, decrements stock for phone sales, and appends the
// completed record to the sales ledger. The stock check strictly precedes
// the append: when the decrement fails the submission aborts and no record
// is written.
func (s *Service) Submit(in SaleInput) (SaleRecord, error) {
	record, err := s.buildRecord(in)
	if err != nil {
		return SaleRecord{}, err
	}

	if record.Type == PhoneSale {
		if err := s.inventory.Decrement(record.Store, record.Product, record.Quantity); err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInsufficientStock) {
				s.logger.Warn("sale rejected",
					zap.String("store", record.Store),
					zap.String("product", record.Product),
					zap.Error(err),
				)
			}
			return SaleRecord{}, err
		}
	}

	if err := s.sales.Append(record); err != nil {
		// Stock already deducted; no compensation path exists, the
		// operator resolves it by hand.
		s.logger.Error("sale append failed after stock deduction",
			zap.String("store", record.Store),
			zap.String("product", record.Product),
			zap.Error(err),
		)
		return SaleRecord{}, err
	}
	return record, nil
}

func (s *Service) buildRecord(in SaleInput) (SaleRecord, error) {
	employee := strings.TrimSpace(in.Employee)
	if employee == "" {
		return SaleRecord{}, fmt.Errorf("%w: employee name cannot be empty", ErrValidation)
	}
	if !KnownStore(in.Store) {
		return SaleRecord{}, fmt.Errorf("%w: unknown store %q", ErrValidation, in.Store)
	}
	if in.PaymentMethod != Cash && in.PaymentMethod != Card {
		return SaleRecord{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, in.PaymentMethod)
	}
	if in.Cost.IsNegative() || in.Cost.GreaterThan(maxPriceDec) {
		return SaleRecord{}, fmt.Errorf("%w: cost must be between 0 and %d", ErrValidation, maxPrice)
	}
	if in.Sold.IsNegative() || in.Sold.GreaterThan(maxPriceDec) {
		return SaleRecord{}, fmt.Errorf("%w: sold price must be between 0 and %d", ErrValidation, maxPrice)
	}

	product := strings.TrimSpace(in.Product)
	quantity := in.Quantity

	switch in.Type {
	case BillPayment:
		// The form forces these for bill payments.
		product = string(BillPayment)
		quantity = 1
	case PhoneSale:
		if product == "" {
			return SaleRecord{}, fmt.Errorf("%w: product name cannot be empty", ErrValidation)
		}
		if quantity < 1 || quantity > MaxSaleQuantity {
			return SaleRecord{}, fmt.Errorf("%w: quantity must be between 1 and %d", ErrValidation, MaxSaleQuantity)
		}
	default:
		return SaleRecord{}, fmt.Errorf("%w: unknown sale type %q", ErrValidation, in.Type)
	}

	return SaleRecord{
		Employee:      employee,
		Store:         in.Store,
		Date:          s.now().Format(DateLayout),
		Type:          in.Type,
		Product:       product,
		Quantity:      quantity,
		Cost:          in.Cost,
		Sold:          in.Sold,
		Acc:           in.Sold.Sub(in.Cost),
		PaymentMethod: in.PaymentMethod,
	}, nil
}

// AddInventory validates a restock form and applies it as an additive upsert,
// returning the resulting quantity.
func (s *Service) AddInventory(store, product string, qtyToAdd int) (int, error) {
	if !KnownStore(store) {
		return 0, fmt.Errorf("%w: unknown store %q", ErrValidation, store)
	}
	product = strings.TrimSpace(product)
	if product == "" {
		return 0, fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if qtyToAdd < 1 || qtyToAdd > MaxRestockQty {
		return 0, fmt.Errorf("%w: quantity must be between 1 and %d", ErrValidation, MaxRestockQty)
	}
	return s.inventory.Upsert(store, product, qtyToAdd)
}

// StoreInventory returns the stock snapshot for one known store.
func (s *Service) StoreInventory(store string) (map[string]int, error) {
	if !KnownStore(store) {
		return nil, fmt.Errorf("%w: unknown store %q", ErrValidation, store)
	}
	return s.inventory.Snapshot(store)
}

// Report returns the sale records matching the given filters together with
// their totals. Empty filters mean all sales; setting both restricts to the
// employee's sales at that store.
func (s *Service) Report(store, employee string) ([]SaleRecord, Totals, error) {
	if store != "" && !KnownStore(store) {
		return nil, Totals{}, fmt.Errorf("%w: unknown store %q", ErrValidation, store)
	}

	records, err := s.sales.All()
	if err != nil {
		return nil, Totals{}, err
	}

	filtered := make([]SaleRecord, 0, len(records))
	for _, r := range records {
		if store != "" && r.Store != store {
			continue
		}
		if employee != "" && r.Employee != employee {
			continue
		}
		filtered = append(filtered, r)
	}

	totals := CalculateTotals(filtered)
	s.logger.Info("report generated",
		zap.String("store_filter", store),
		zap.String("employee_filter", employee),
		zap.Int("results_count", len(filtered)),
	)
	return filtered, totals, nil
}

// Employees lists the distinct employee names found in the sales ledger.
func (s *Service) Employees() ([]string, error) {
	return s.sales.Employees()
}
