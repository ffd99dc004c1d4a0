package pos

import (
	"github.com/priyankar997/ejWireless/internal/jsondoc"
)

// InventoryStore loads and saves the whole inventory document. The ledger
// never keeps an in-memory copy between calls, so the stored document stays
// authoritative.
type InventoryStore interface {
	Load() (Inventory, error)
	Save(Inventory) error
}

// SalesStore loads and saves the whole ordered sale sequence.
type SalesStore interface {
	Load() ([]SaleRecord, error)
	Save([]SaleRecord) error
}

// FileInventoryStore persists the inventory document as one JSON file.
type FileInventoryStore struct {
	Path string
}

func (f *FileInventoryStore) Load() (Inventory, error) {
	return jsondoc.Load(f.Path, DefaultInventory())
}

func (f *FileInventoryStore) Save(inv Inventory) error {
	return jsondoc.Save(f.Path, inv)
}

// FileSalesStore persists the sales ledger as one JSON array file.
type FileSalesStore struct {
	Path string
}

func (f *FileSalesStore) Load() ([]SaleRecord, error) {
	return jsondoc.Load(f.Path, []SaleRecord{})
}

func (f *FileSalesStore) Save(sales []SaleRecord) error {
	return jsondoc.Save(f.Path, sales)
}
