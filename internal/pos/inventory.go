package pos

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a store or product is missing during a
// decrement.
var ErrNotFound = errors.New("product not found in inventory")

// ErrInsufficientStock is returned when a decrement would drive a quantity
// below zero.
var ErrInsufficientStock = errors.New("not enough stock")

// InventoryLedger applies stock mutations as whole-document
// read-modify-write cycles against its store.
type InventoryLedger struct {
	store  InventoryStore
	logger *zap.Logger
}

// NewInventoryLedger creates an InventoryLedger over the given store.
func NewInventoryLedger(store InventoryStore, logger *zap.Logger) *InventoryLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryLedger{
		store:  store,
		logger: logger,
	}
}

// Decrement subtracts qty from (store, product) and persists the document.
// It fails with ErrNotFound when the store or product is absent and with
// ErrInsufficientStock when the available quantity is smaller than qty; on
// any failure nothing is persisted.
func (l *InventoryLedger) Decrement(store, product string, qty int) error {
	inv, err := l.store.Load()
	if err != nil {
		return err
	}

	products, ok := inv[store]
	if !ok {
		return fmt.Errorf("%w: %q at %q", ErrNotFound, product, store)
	}
	current, ok := products[product]
	if !ok {
		return fmt.Errorf("%w: %q at %q", ErrNotFound, product, store)
	}
	if current < qty {
		return fmt.Errorf("%w for %q: available %d, requested %d", ErrInsufficientStock, product, current, qty)
	}

	products[product] = current - qty
	if err := l.store.Save(inv); err != nil {
		return err
	}

	l.logger.Info("inventory decremented",
		zap.String("store", store),
		zap.String("product", product),
		zap.Int("qty", qty),
		zap.Int("remaining", current-qty),
	)
	return nil
}

// Upsert adds qtyToAdd to (store, product), creating the store and product
// entries as needed, persists the document and returns the new quantity.
func (l *InventoryLedger) Upsert(store, product string, qtyToAdd int) (int, error) {
	inv, err := l.store.Load()
	if err != nil {
		return 0, err
	}

	if _, ok := inv[store]; !ok {
		inv[store] = map[string]int{}
	}
	newQty := inv[store][product] + qtyToAdd
	inv[store][product] = newQty

	if err := l.store.Save(inv); err != nil {
		return 0, err
	}

	l.logger.Info("inventory updated",
		zap.String("store", store),
		zap.String("product", product),
		zap.Int("added", qtyToAdd),
		zap.Int("quantity", newQty),
	)
	return newQty, nil
}

// Snapshot returns the current product quantities for one store. A known
// store with no stock yet yields an empty map.
func (l *InventoryLedger) Snapshot(store string) (map[string]int, error) {
	inv, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	products, ok := inv[store]
	if !ok {
		return map[string]int{}, nil
	}
	return products, nil
}
