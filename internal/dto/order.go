package dto

import (
	"time"

	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the payload for creating a shipment. Sender
// fields are snapshotted from the client profile server-side.
type CreateOrderRequest struct {
	RecipientName      string             `json:"recipientName" binding:"required"`
	RecipientContact   string             `json:"recipientContact" binding:"required"`
	RecipientPhone     string             `json:"recipientPhone" binding:"required"`
	RecipientAddress   string             `json:"recipientAddress" binding:"required"`
	RecipientCity      string             `json:"recipientCity" binding:"required"`
	PackageDescription string             `json:"packageDescription" binding:"required"`
	WeightKg           decimal.Decimal    `json:"weightKg" binding:"required"`
	DimensionsCm       string             `json:"dimensionsCm" binding:"required"`
	DeclaredValueCOP   decimal.Decimal    `json:"declaredValueCOP"`
	ServiceType        domain.ServiceType `json:"serviceType" binding:"required,oneof=standard express same-day international"`
}

// AdvanceStatusRequest defines the payload for moving an order forward in
// its lifecycle.
type AdvanceStatusRequest struct {
	Status   domain.OrderStatus `json:"status" binding:"required,oneof=picked_up in_transit out_for_delivery delivered cancelled"`
	Location string             `json:"location" binding:"required"`
}

// TimelineEventResponse is a single milestone on an order's timeline.
type TimelineEventResponse struct {
	Event     string     `json:"event"`
	Location  string     `json:"location"`
	Timestamp *time.Time `json:"timestamp"`
	Completed bool       `json:"completed"`
}

// OrderResponse is the full, owner-only view of an order.
type OrderResponse struct {
	OrderID            string                  `json:"id"`
	ClientID           string                  `json:"clientId"`
	TrackingNumber     string                  `json:"trackingNumber"`
	SenderCompany      string                  `json:"senderCompany"`
	SenderContact      string                  `json:"senderContact"`
	SenderPhone        string                  `json:"senderPhone"`
	SenderAddress      string                  `json:"senderAddress"`
	RecipientName      string                  `json:"recipientName"`
	RecipientContact   string                  `json:"recipientContact"`
	RecipientPhone     string                  `json:"recipientPhone"`
	RecipientAddress   string                  `json:"recipientAddress"`
	RecipientCity      string                  `json:"recipientCity"`
	PackageDescription string                  `json:"packageDescription"`
	WeightKg           decimal.Decimal         `json:"weightKg"`
	DimensionsCm       string                  `json:"dimensionsCm"`
	DeclaredValueCOP   decimal.Decimal         `json:"declaredValueCOP"`
	ServiceType        domain.ServiceType      `json:"serviceType"`
	ShippingCostCOP    decimal.Decimal         `json:"shippingCostCOP"`
	PaymentStatus      domain.PaymentStatus    `json:"paymentStatus"`
	InvoiceNumber      *string                 `json:"invoiceNumber"`
	Status             domain.OrderStatus      `json:"status"`
	CreatedAt          time.Time               `json:"createdAt"`
	EstimatedDelivery  time.Time               `json:"estimatedDelivery"`
	DeliveredAt        *time.Time              `json:"deliveredAt"`
	Timeline           []TimelineEventResponse `json:"timeline"`
}

// TrackingResponse is the public, unauthenticated view of a shipment.
// It deliberately carries no client ID, no costs and no financial fields.
type TrackingResponse struct {
	TrackingNumber    string                  `json:"trackingNumber"`
	Status            domain.OrderStatus      `json:"status"`
	ServiceType       domain.ServiceType      `json:"serviceType"`
	SenderCompany     string                  `json:"senderCompany"`
	SenderAddress     string                  `json:"senderAddress"`
	RecipientName     string                  `json:"recipientName"`
	RecipientAddress  string                  `json:"recipientAddress"`
	RecipientCity     string                  `json:"recipientCity"`
	EstimatedDelivery time.Time               `json:"estimatedDelivery"`
	DeliveredAt       *time.Time              `json:"deliveredAt"`
	Timeline          []TimelineEventResponse `json:"timeline"`
}

// ToTimelineResponse converts a domain timeline.
func ToTimelineResponse(events []domain.TimelineEvent) []TimelineEventResponse {
	out := make([]TimelineEventResponse, len(events))
	for i, ev := range events {
		out[i] = TimelineEventResponse{
			Event:     ev.Event,
			Location:  ev.Location,
			Timestamp: ev.Timestamp,
			Completed: ev.Completed,
		}
	}
	return out
}

// ToOrderResponse converts a domain.Order to the owner-only response shape.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:            o.OrderID,
		ClientID:           o.ClientID,
		TrackingNumber:     o.TrackingNumber,
		SenderCompany:      o.SenderCompany,
		SenderContact:      o.SenderContact,
		SenderPhone:        o.SenderPhone,
		SenderAddress:      o.SenderAddress,
		RecipientName:      o.RecipientName,
		RecipientContact:   o.RecipientContact,
		RecipientPhone:     o.RecipientPhone,
		RecipientAddress:   o.RecipientAddress,
		RecipientCity:      o.RecipientCity,
		PackageDescription: o.PackageDescription,
		WeightKg:           o.WeightKg,
		DimensionsCm:       o.DimensionsCm,
		DeclaredValueCOP:   o.DeclaredValueCOP,
		ServiceType:        o.ServiceType,
		ShippingCostCOP:    o.ShippingCostCOP,
		PaymentStatus:      o.PaymentStatus,
		InvoiceNumber:      o.InvoiceNumber,
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		EstimatedDelivery:  o.EstimatedDelivery,
		DeliveredAt:        o.DeliveredAt,
		Timeline:           ToTimelineResponse(o.Timeline),
	}
}

// ToListOrderResponse converts a slice of domain orders.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}

// ToTrackingResponse converts a domain.Order to the public tracking subset.
func ToTrackingResponse(o *domain.Order) TrackingResponse {
	return TrackingResponse{
		TrackingNumber:    o.TrackingNumber,
		Status:            o.Status,
		ServiceType:       o.ServiceType,
		SenderCompany:     o.SenderCompany,
		SenderAddress:     o.SenderAddress,
		RecipientName:     o.RecipientName,
		RecipientAddress:  o.RecipientAddress,
		RecipientCity:     o.RecipientCity,
		EstimatedDelivery: o.EstimatedDelivery,
		DeliveredAt:       o.DeliveredAt,
		Timeline:          ToTimelineResponse(o.Timeline),
	}
}
