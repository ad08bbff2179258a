package order

import (
	"errors"
	"testing"

	"github.com/restosuite/storefront-backend/internal/cart"
	"github.com/restosuite/storefront-backend/internal/storage"
)

func seededFactory(t *testing.T) (*Factory, *cart.Store, *storage.MemoryStore) {
	t.Helper()
	slots := storage.NewMemoryStore()
	c := cart.NewStore(slots, storage.CartKey)
	c.AddItem(cart.Item{ID: "1", Name: "Chicken Adobo", Price: 14900}, 2)
	c.AddItem(cart.Item{ID: "2", Name: "Sinigang", Price: 17500}, 1)
	return NewFactory(c, slots, storage.OrdersKey, "", nil), c, slots
}

func TestCreateOrderSnapshotsAndClears(t *testing.T) {
	f, c, _ := seededFactory(t)

	ord := f.CreateOrder(TypePickup)

	if len(c.Items()) != 0 {
		t.Error("cart should be empty after order creation")
	}
	if ord.Status != StatusReceived {
		t.Errorf("new orders start at received, got %q", ord.Status)
	}
	if ord.Type != TypePickup {
		t.Errorf("unexpected type %q", ord.Type)
	}
	if ord.Total != 2*14900+17500 {
		t.Errorf("unexpected total %d", ord.Total)
	}
	if len(ord.Items) != 2 {
		t.Fatalf("expected 2 items in snapshot, got %d", len(ord.Items))
	}
	if ord.ID == "" || ord.CreatedAt == "" {
		t.Error("id and createdAt must be set")
	}

	stored := f.Orders()
	if len(stored) != 1 || stored[0].ID != ord.ID {
		t.Fatalf("expected the created order first in history, got %+v", stored)
	}
}

func TestOrdersAreMostRecentFirst(t *testing.T) {
	f, c, _ := seededFactory(t)

	first := f.CreateOrder(TypeDelivery)
	c.AddItem(cart.Item{ID: "3", Name: "Halo-Halo", Price: 9900}, 1)
	second := f.CreateOrder(TypePickup)

	list := f.Orders()
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Error("orders must be prepended, most recent first")
	}
}

func TestPastOrderImmuneToCartMutation(t *testing.T) {
	f, c, _ := seededFactory(t)

	ord := f.CreateOrder(TypeDineIn)

	c.AddItem(cart.Item{ID: "1", Name: "Chicken Adobo", Price: 99999}, 9)

	stored := f.Orders()[0]
	if stored.Total != ord.Total {
		t.Errorf("stored order total changed: %d", stored.Total)
	}
	if len(stored.Items) != 2 || stored.Items[0].Price != 14900 {
		t.Errorf("stored order items changed: %+v", stored.Items)
	}
}

func TestCreateOrderPermitsEmptyCart(t *testing.T) {
	slots := storage.NewMemoryStore()
	c := cart.NewStore(slots, storage.CartKey)
	f := NewFactory(c, slots, storage.OrdersKey, "", nil)

	// the factory trusts its caller; validation is a checkout concern
	ord := f.CreateOrder(TypePickup)
	if ord.Total != 0 || len(ord.Items) != 0 {
		t.Errorf("expected a zero-item order, got %+v", ord)
	}
	if len(f.Orders()) != 1 {
		t.Error("zero-item order should still be persisted")
	}
}

func TestCorruptOrderSlotReadsEmpty(t *testing.T) {
	slots := storage.NewMemoryStore()
	slots.Write(storage.OrdersKey, []byte(`?!`))
	f := NewFactory(cart.NewStore(slots, storage.CartKey), slots, storage.OrdersKey, "", nil)

	if got := f.Orders(); len(got) != 0 {
		t.Errorf("corrupt slot should read as empty history, got %+v", got)
	}
}

// readOnlyStore reads fine but refuses writes.
type readOnlyStore struct{ inner storage.Store }

func (r readOnlyStore) Read(key string) ([]byte, error) { return r.inner.Read(key) }
func (r readOnlyStore) Write(string, []byte) error      { return errors.New("write refused") }
func (r readOnlyStore) Delete(string) error             { return errors.New("write refused") }

func TestWriteFailureStillReturnsOrder(t *testing.T) {
	slots := storage.NewMemoryStore()
	c := cart.NewStore(slots, storage.CartKey)
	c.AddItem(cart.Item{ID: "1", Name: "Chicken Adobo", Price: 14900}, 1)

	f := NewFactory(c, readOnlyStore{inner: slots}, storage.OrdersKey, "", nil)
	ord := f.CreateOrder(TypeDelivery)

	if ord.ID == "" || len(ord.Items) != 1 {
		t.Errorf("order must be returned despite the write failure: %+v", ord)
	}
	if len(c.Items()) != 0 {
		t.Error("cart should still be cleared")
	}
}

// recordingArchiver captures archived orders; fail makes it error out.
type recordingArchiver struct {
	got  []Order
	fail bool
}

func (r *recordingArchiver) Archive(ord Order) error {
	if r.fail {
		return errors.New("archive down")
	}
	r.got = append(r.got, ord)
	return nil
}

func TestArchiveIsBestEffort(t *testing.T) {
	slots := storage.NewMemoryStore()
	c := cart.NewStore(slots, storage.CartKey)
	c.AddItem(cart.Item{ID: "1", Name: "Chicken Adobo", Price: 14900}, 1)

	rec := &recordingArchiver{}
	f := NewFactory(c, slots, storage.OrdersKey, "42", rec)
	ord := f.CreateOrder(TypeDelivery)

	if len(rec.got) != 1 || rec.got[0].ID != ord.ID || rec.got[0].UserID != "42" {
		t.Errorf("archive did not receive the order: %+v", rec.got)
	}

	// a failing archiver must not disturb the storefront flow
	c.AddItem(cart.Item{ID: "2", Name: "Sinigang", Price: 17500}, 1)
	rec.fail = true
	ord = f.CreateOrder(TypePickup)
	if ord.ID == "" || len(f.Orders()) != 2 {
		t.Error("order creation should survive archive failure")
	}
}
