package address

// Address is a saved delivery address. Label is the short name shown in
// the address picker ("Home", "Office"); Details is the full street text
// handed to the rider.
type Address struct {
	ID        int    `json:"addressId"`
	UserID    int    `json:"userId"`
	Label     string `json:"label"`
	Details   string `json:"details"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
