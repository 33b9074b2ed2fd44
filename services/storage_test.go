package services_test

import (
	"bytes"
	"testing"

	"github.com/pocketbase/dbx"

	"quotecreation/services"
	"quotecreation/testhelpers"
)

func TestSaveAndLoadValue(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, ok := services.LoadValue(app, services.DraftsKey); ok {
		t.Fatal("missing key should report not found")
	}

	if err := services.SaveValue(app, services.DraftsKey, []byte(`[{"id":"d1"}]`)); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	raw, ok := services.LoadValue(app, services.DraftsKey)
	if !ok {
		t.Fatal("saved key not found")
	}
	if !bytes.Equal(raw, []byte(`[{"id":"d1"}]`)) {
		t.Errorf("loaded %q", raw)
	}
}

// Saving the same key twice updates the record in place instead of
// creating a second one.
func TestSaveValue_Overwrites(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := services.SaveValue(app, services.ProductsKey, []byte("first")); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	if err := services.SaveValue(app, services.ProductsKey, []byte("second")); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}

	raw, ok := services.LoadValue(app, services.ProductsKey)
	if !ok || string(raw) != "second" {
		t.Errorf("loaded %q, want %q", raw, "second")
	}

	records, err := app.FindRecordsByFilter(services.StorageCollection,
		"key = {:key}", "", 0, 0, dbx.Params{"key": services.ProductsKey})
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records for one key, want 1", len(records))
	}
}

func TestStorageKeysAreIndependent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := services.SaveValue(app, services.DraftsKey, []byte("drafts")); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	if err := services.SaveValue(app, services.ProductsKey, []byte("products")); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}

	raw, _ := services.LoadValue(app, services.DraftsKey)
	if string(raw) != "drafts" {
		t.Errorf("drafts blob = %q", raw)
	}
	raw, _ = services.LoadValue(app, services.ProductsKey)
	if string(raw) != "products" {
		t.Errorf("products blob = %q", raw)
	}
}
