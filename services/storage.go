package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Keys for the two persisted regions. The values are opaque serialized
// blobs as far as storage is concerned; only the repair layer
// interprets them.
const (
	StorageCollection = "app_storage"
	DraftsKey         = "quote-drafts"
	ProductsKey       = "quote-products"
)

// LoadValue reads the raw blob stored under key. A missing key is not
// an error; it returns nil bytes and false.
func LoadValue(app *pocketbase.PocketBase, key string) ([]byte, bool) {
	record, err := app.FindFirstRecordByData(StorageCollection, "key", key)
	if err != nil {
		return nil, false
	}
	return []byte(record.GetString("value")), true
}

// SaveValue writes the raw blob under key, creating the entry when it
// does not exist yet.
func SaveValue(app *pocketbase.PocketBase, key string, value []byte) error {
	record, err := app.FindFirstRecordByData(StorageCollection, "key", key)
	if err != nil {
		col, err := app.FindCollectionByNameOrId(StorageCollection)
		if err != nil {
			return fmt.Errorf("storage collection not found: %w", err)
		}
		record = core.NewRecord(col)
		record.Set("key", key)
	}
	record.Set("value", string(value))
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
