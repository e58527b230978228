package model

import "time"

// Booking statuses as the backend reports them. Unknown values still render;
// they just never match a status tab other than "all".
const (
	BookingConfirmed = "Confirmed"
	BookingPending   = "Pending"
	BookingCancelled = "Cancelled"
)

// Order statuses.
const (
	OrderPreparing      = "Preparing"
	OrderOutForDelivery = "Out for Delivery"
	OrderDelivered      = "Delivered"
	OrderCancelled      = "Cancelled"
)

// Tenant account statuses.
const (
	TenantActive  = "active"
	TenantBlocked = "blocked"
)

// Booking represents a table reservation owned by the backend.
type Booking struct {
	ID            string    `json:"_id"`
	UserID        string    `json:"userId"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	TableNo       string    `json:"tableNo"`
	BookingTime   string    `json:"bookingTime"`
	Date          string    `json:"date"` // business date (YYYY-MM-DD)
	NoOfPerson    int       `json:"noOfPerson"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderItem is one line item on an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order represents a food order.
type Order struct {
	ID            string      `json:"_id"`
	OrderNo       string      `json:"orderNo"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	TableNo       string      `json:"tableNo"`
	Items         []OrderItem `json:"items"`
	TotalBill     float64     `json:"totalBill"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// CallLog is one entry from the tenant's AI phone assistant.
type CallLog struct {
	ID               string    `json:"_id"`
	CallerName       string    `json:"callerName"`
	CallerNumber     string    `json:"callerNumber"`
	CallDuration     string    `json:"callDuration"`
	CallConversation string    `json:"callConversation"`
	CallType         string    `json:"callType"` // Incoming or Outgoing
	Purpose          string    `json:"purpose"`
	CalledAt         time.Time `json:"calledAt"`
}

// Feedback is a customer review tied to an order.
type Feedback struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Customer  string    `json:"customer"`
	Rating    int       `json:"rating"` // 1-5
	Comments  string    `json:"comments"`
	OrderID   string    `json:"orderId"`
	IsVisible bool      `json:"isVisible"`
	Date      time.Time `json:"date"`
}

// TableTypeConfig is one table-type entry on a tenant account.
type TableTypeConfig struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     bool   `json:"status"`
	NoOfTables int    `json:"noOfTables"`
}

// Tenant is a restaurant account managed by the super-admin.
type Tenant struct {
	ID                string            `json:"_id"`
	Username          string            `json:"username"`
	Email             string            `json:"email"`
	PhoneNumber       string            `json:"phoneNumber"`
	RestaurantName    string            `json:"restaurantName"`
	RestaurantAddress string            `json:"restaurantAddress"`
	NoOfTables        int               `json:"noOfTables"`
	TableTypes        []TableTypeConfig `json:"tableTypes"`
	Status            string            `json:"status"` // active or blocked
	CreatedAt         time.Time         `json:"createdAt"`
	LastPaymentDate   string            `json:"lastPaymentDate"`
}

// TableType is a catalog entry tenants can be configured with.
type TableType struct {
	ID        string    `json:"_id"`
	TypeName  string    `json:"typeName"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MenuItem is one dish on a tenant's menu.
type MenuItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MenuCategory groups menu items.
type MenuCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Recording is a stored call audio file. Playback is out of scope; the
// console only lists them.
type Recording struct {
	ID        string    `json:"_id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTenant carries the form fields for tenant registration.
type NewTenant struct {
	Username          string
	Email             string
	PhoneNumber       string
	Password          string
	RestaurantName    string
	RestaurantAddress string
	TableTypes        []TableTypeConfig
	CreatedBy         string
}

// UpdateTenant carries the editable tenant fields.
type UpdateTenant struct {
	Username          string
	Email             string
	PhoneNumber       string
	RestaurantName    string
	RestaurantAddress string
	TableTypes        []TableTypeConfig
	Status            string
}

// UpdateBooking carries the editable booking fields.
type UpdateBooking struct {
	CustomerName  string
	CustomerPhone string
	TableNo       string
	BookingTime   string
	NoOfPerson    int
	Status        string
}

// NewMenuItem carries the form fields for creating or editing a dish.
type NewMenuItem struct {
	Name        string
	Category    string
	Price       float64
	Description string
	IsAvailable bool
}
