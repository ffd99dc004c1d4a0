package pos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

func newTestInventory(t *testing.T) (*InventoryLedger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := &FileInventoryStore{Path: path}
	return NewInventoryLedger(store, zaptest.NewLogger(t)), path
}

func TestUpsertCreatesStoreAndProduct(t *testing.T) {
	ledger, _ := newTestInventory(t)

	qty, err := ledger.Upsert("1 E Penn Sq", "Widget", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	snap, err := ledger.Snapshot("1 E Penn Sq")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Widget": 5}, snap)
}

func TestUpsertIsAdditive(t *testing.T) {
	ledger, _ := newTestInventory(t)

	_, err := ledger.Upsert("1 E Penn Sq", "Widget", 5)
	require.NoError(t, err)
	qty, err := ledger.Upsert("1 E Penn Sq", "Widget", 7)
	require.NoError(t, err)
	assert.Equal(t, 12, qty)
}

func TestDecrementReducesStock(t *testing.T) {
	ledger, _ := newTestInventory(t)
	_, err := ledger.Upsert("1 E Penn Sq", "Widget", 5)
	require.NoError(t, err)

	require.NoError(t, ledger.Decrement("1 E Penn Sq", "Widget", 3))

	snap, err := ledger.Snapshot("1 E Penn Sq")
	require.NoError(t, err)
	assert.Equal(t, 2, snap["Widget"])
}

func TestDecrementInsufficientStockLeavesDocumentUntouched(t *testing.T) {
	ledger, path := newTestInventory(t)
	_, err := ledger.Upsert("1 E Penn Sq", "Widget", 5)
	require.NoError(t, err)
	require.NoError(t, ledger.Decrement("1 E Penn Sq", "Widget", 3))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = ledger.Decrement("1 E Penn Sq", "Widget", 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed decrement must not rewrite the file")

	snap, err := ledger.Snapshot("1 E Penn Sq")
	require.NoError(t, err)
	assert.Equal(t, 2, snap["Widget"])
}

func TestDecrementUnknownProduct(t *testing.T) {
	ledger, _ := newTestInventory(t)
	_, err := ledger.Upsert("1 E Penn Sq", "Widget", 5)
	require.NoError(t, err)

	err = ledger.Decrement("1 E Penn Sq", "Gadget", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecrementUnknownStore(t *testing.T) {
	ledger, _ := newTestInventory(t)
	_, err := ledger.Upsert("1 E Penn Sq", "Widget", 5)
	require.NoError(t, err)

	err = ledger.Decrement("99 Nowhere St", "Widget", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFreshDocumentHasEveryKnownStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := &FileInventoryStore{Path: path}

	inv, err := store.Load()
	require.NoError(t, err)
	require.Len(t, inv, len(StoreLocations))
	for _, s := range StoreLocations {
		assert.Contains(t, inv, s)
		assert.Empty(t, inv[s])
	}
}

func TestSnapshotUnknownStoreIsEmpty(t *testing.T) {
	ledger, _ := newTestInventory(t)
	snap, err := ledger.Snapshot("99 Nowhere St")
	require.NoError(t, err)
	assert.Empty(t, snap)
}

// Quantities always equal the running sum of the upserts applied to them,
// and never drop below zero through any decrement sequence.
func TestUpsertSumProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		path := filepath.Join(t.TempDir(), "inventory.json")
		ledger := NewInventoryLedger(&FileInventoryStore{Path: path}, nil)

		stores := StoreLocations
		products := []string{"Widget", "Gadget", "SIM Kit"}
		expected := map[string]map[string]int{}

		n := rapid.IntRange(1, 20).Draw(rt, "ops")
		for i := 0; i < n; i++ {
			store := rapid.SampledFrom(stores).Draw(rt, "store")
			product := rapid.SampledFrom(products).Draw(rt, "product")

			if rapid.Bool().Draw(rt, "decrement") {
				qty := rapid.IntRange(1, 10).Draw(rt, "dec-qty")
				err := ledger.Decrement(store, product, qty)
				if err == nil {
					expected[store][product] -= qty
				}
				continue
			}

			qty := rapid.IntRange(1, 50).Draw(rt, "add-qty")
			got, err := ledger.Upsert(store, product, qty)
			if err != nil {
				rt.Fatalf("upsert failed: %v", err)
			}
			if expected[store] == nil {
				expected[store] = map[string]int{}
			}
			expected[store][product] += qty
			if got != expected[store][product] {
				rt.Fatalf("quantity %d, want running sum %d", got, expected[store][product])
			}
		}

		for store, products := range expected {
			snap, err := ledger.Snapshot(store)
			if err != nil {
				rt.Fatalf("snapshot failed: %v", err)
			}
			for product, want := range products {
				if snap[product] != want {
					rt.Fatalf("%s/%s: stored %d, want %d", store, product, snap[product], want)
				}
				if snap[product] < 0 {
					rt.Fatalf("%s/%s went negative: %d", store, product, snap[product])
				}
			}
		}
	})
}
