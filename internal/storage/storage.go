package storage

import "errors"

// Slot keys shared with the web storefront. The web client persisted the
// same JSON shapes to localStorage under these names, so a snapshot written
// by either side stays readable by the other.
const (
	CartKey   = "rs_cart_v1"
	OrdersKey = "rs_orders_v1"
)

var ErrNotFound = errors.New("slot not found")

// Store is a minimal key/value slot store used for cart and order
// persistence. Read returns ErrNotFound for keys that were never written.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// SessionKey scopes a slot key to a storefront session. The anonymous
// session keeps the bare key so a single-user deployment matches the
// original storage layout.
func SessionKey(sessionID, key string) string {
	if sessionID == "" {
		return key
	}
	return sessionID + "/" + key
}
