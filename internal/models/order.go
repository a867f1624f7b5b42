package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimelineEvent is the JSON shape stored inside the orders.timeline column.
type TimelineEvent struct {
	Event     string     `json:"event"`
	Location  string     `json:"location"`
	Timestamp *time.Time `json:"timestamp"`
	Completed bool       `json:"completed"`
}

// Order is the database representation of a shipment. The timeline is
// embedded as JSONB; everything else maps to plain columns.
type Order struct {
	OrderID            string          `db:"order_id"`
	ClientID           string          `db:"client_id"`
	TrackingNumber     string          `db:"tracking_number"`
	SenderCompany      string          `db:"sender_company"`
	SenderContact      string          `db:"sender_contact"`
	SenderPhone        string          `db:"sender_phone"`
	SenderAddress      string          `db:"sender_address"`
	RecipientName      string          `db:"recipient_name"`
	RecipientContact   string          `db:"recipient_contact"`
	RecipientPhone     string          `db:"recipient_phone"`
	RecipientAddress   string          `db:"recipient_address"`
	RecipientCity      string          `db:"recipient_city"`
	PackageDescription string          `db:"package_description"`
	WeightKg           decimal.Decimal `db:"weight_kg"`
	DimensionsCm       string          `db:"dimensions_cm"`
	DeclaredValueCOP   decimal.Decimal `db:"declared_value_cop"`
	ServiceType        string          `db:"service_type"`
	ShippingCostCOP    decimal.Decimal `db:"shipping_cost_cop"`
	PaymentStatus      string          `db:"payment_status"`
	InvoiceNumber      *string         `db:"invoice_number"`
	Status             string          `db:"status"`
	EstimatedDelivery  time.Time       `db:"estimated_delivery"`
	DeliveredAt        *time.Time      `db:"delivered_at"`
	Timeline           []TimelineEvent `db:"timeline"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}
