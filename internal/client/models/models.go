// Package models defines the backend resource records the client transports.
// All records are point-in-time snapshots: they are never mutated locally,
// only replaced by re-fetching or by a successful update call's response.
package models

// Brand is a client-owned sub-record: a label the client manufactures under,
// with an optional logo reference resolvable against the asset base URL.
type Brand struct {
	ID       int64  `json:"id,omitempty"`
	ClientID int64  `json:"client_id,omitempty"`
	Name     string `json:"name"`
	LogoPath string `json:"logo,omitempty"`
}

// Client is an apparel-business customer. A client owns zero-or-more brands.
type Client struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Contact   string  `json:"contact_number"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	Province  string  `json:"province"`
	ZipCode   string  `json:"zip_code"`
	Status    string  `json:"status"`
	Brands    []Brand `json:"brands,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// Order is a production order referencing exactly one client by id.
type Order struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	BrandID     int64  `json:"brand_id,omitempty"`
	GarmentType string `json:"garment_type"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Account is an employee login of the manufacturing business.
type Account struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact_number,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DropdownSetting is one configurable option of a dropdown category
// (order statuses, garment types, roles, and so on).
type DropdownSetting struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
