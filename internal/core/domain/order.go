package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OrderStatus is the shipment lifecycle state of an order.
type OrderStatus string

const (
	StatusCreated        OrderStatus = "created"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusInTransit      OrderStatus = "in_transit"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// ServiceType selects the shipping service level.
type ServiceType string

const (
	ServiceStandard      ServiceType = "standard"
	ServiceExpress       ServiceType = "express"
	ServiceSameDay       ServiceType = "same-day"
	ServiceInternational ServiceType = "international"
)

// PaymentStatus is the billing state of an order, kept consistent with the
// status of its charge transaction.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentCredited PaymentStatus = "credited"
)

// TimelineEvent is a single shipment milestone. The timeline is seeded at
// order creation with the full planned sequence; advancing the order flips
// the next pending event to completed. Completed events always form a
// contiguous prefix of the sequence.
type TimelineEvent struct {
	Event     string     `json:"event"`
	Location  string     `json:"location"`
	Timestamp *time.Time `json:"timestamp"`
	Completed bool       `json:"completed"`
}

// Order is a shipment record. Identity fields (sender/recipient snapshots,
// package attributes, tracking number, cost) are immutable after creation;
// only Status, Timeline, DeliveredAt and PaymentStatus change afterwards.
type Order struct {
	OrderID            string          `json:"id"`
	ClientID           string          `json:"clientId"`
	TrackingNumber     string          `json:"trackingNumber"`
	SenderCompany      string          `json:"senderCompany"`
	SenderContact      string          `json:"senderContact"`
	SenderPhone        string          `json:"senderPhone"`
	SenderAddress      string          `json:"senderAddress"`
	RecipientName      string          `json:"recipientName"`
	RecipientContact   string          `json:"recipientContact"`
	RecipientPhone     string          `json:"recipientPhone"`
	RecipientAddress   string          `json:"recipientAddress"`
	RecipientCity      string          `json:"recipientCity"`
	PackageDescription string          `json:"packageDescription"`
	WeightKg           decimal.Decimal `json:"weightKg"`
	DimensionsCm       string          `json:"dimensionsCm"`
	DeclaredValueCOP   decimal.Decimal `json:"declaredValueCOP"`
	ServiceType        ServiceType     `json:"serviceType"`
	ShippingCostCOP    decimal.Decimal `json:"shippingCostCOP"`
	PaymentStatus      PaymentStatus   `json:"paymentStatus"`
	InvoiceNumber      *string         `json:"invoiceNumber"`
	Status             OrderStatus     `json:"status"`
	EstimatedDelivery  time.Time       `json:"estimatedDelivery"`
	DeliveredAt        *time.Time      `json:"deliveredAt"`
	Timeline           []TimelineEvent `json:"timeline"`
	AuditFields
}

// allowedTransitions is the explicit state machine table. Transitions are
// strictly forward with no skipping; cancellation is reachable from any
// non-terminal state. Terminal states map to an empty set.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusCreated:        {StatusPickedUp, StatusCancelled},
	StatusPickedUp:       {StatusInTransit, StatusCancelled},
	StatusInTransit:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// eventLabels are the milestone descriptions shown on the public timeline.
var eventLabels = map[OrderStatus]string{
	StatusCreated:        "Orden creada",
	StatusPickedUp:       "Paquete recogido",
	StatusInTransit:      "En tránsito",
	StatusOutForDelivery: "En reparto",
	StatusDelivered:      "Entregado",
	StatusCancelled:      "Orden cancelada",
}

// milestoneSequence is the planned event order seeded into every new timeline.
var milestoneSequence = []OrderStatus{
	StatusCreated,
	StatusPickedUp,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
}

// estimatedDeliveryDays per service level, counted from the creation time.
var estimatedDeliveryDays = map[ServiceType]int{
	ServiceStandard:      5,
	ServiceExpress:       2,
	ServiceSameDay:       0,
	ServiceInternational: 10,
}

// baseRatesCOP is the deterministic per-kg rate table used for shipping cost.
var baseRatesCOP = map[ServiceType]decimal.Decimal{
	ServiceStandard:      decimal.NewFromInt(8000),
	ServiceExpress:       decimal.NewFromInt(15000),
	ServiceSameDay:       decimal.NewFromInt(22000),
	ServiceInternational: decimal.NewFromInt(35000),
}

// fixedSurchargeCOP is added to every shipment before rounding.
var fixedSurchargeCOP = decimal.NewFromInt(30000)

var trackingNumberPattern = regexp.MustCompile(`^JSL-\d{4}-\d{4,}$`)

// IsValidServiceType reports whether s names a known service level.
func IsValidServiceType(s ServiceType) bool {
	_, ok := baseRatesCOP[s]
	return ok
}

// IsValidStatus reports whether s names a known order status.
func IsValidStatus(s OrderStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether s accepts no further transitions.
func IsTerminal(s OrderStatus) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether moving from one status to another is allowed
// by the state machine table.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ShippingCost computes the cost of a shipment in COP:
// base_rate[serviceType] * weightKg + fixed surcharge, rounded up to the
// nearest 1000.
func ShippingCost(serviceType ServiceType, weightKg decimal.Decimal) (decimal.Decimal, error) {
	rate, ok := baseRatesCOP[serviceType]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown service type %q", serviceType)
	}
	raw := rate.Mul(weightKg).Add(fixedSurchargeCOP)
	thousand := decimal.NewFromInt(1000)
	return raw.Div(thousand).Ceil().Mul(thousand), nil
}

// EstimatedDelivery returns the immutable delivery estimate for an order
// created at the given time.
func EstimatedDelivery(serviceType ServiceType, createdAt time.Time) time.Time {
	days := estimatedDeliveryDays[serviceType]
	return createdAt.AddDate(0, 0, days)
}

// FormatTrackingNumber renders the public tracking number for a yearly
// sequence value, e.g. JSL-2026-0001.
func FormatTrackingNumber(year int, sequence int64) string {
	return fmt.Sprintf("JSL-%d-%04d", year, sequence)
}

// IsWellFormedTrackingNumber reports whether s matches the public tracking
// number format. Callers must treat a malformed number exactly like an
// unknown one so the numbering scheme cannot be probed.
func IsWellFormedTrackingNumber(s string) bool {
	return trackingNumberPattern.MatchString(s)
}

// NewTimeline seeds the planned milestone sequence for a new order. The
// creation event is completed immediately at the sender's location; the rest
// are pending with no timestamp.
func NewTimeline(origin string, now time.Time) []TimelineEvent {
	timeline := make([]TimelineEvent, 0, len(milestoneSequence))
	for i, status := range milestoneSequence {
		ev := TimelineEvent{Event: eventLabels[status]}
		if i == 0 {
			ts := now
			ev.Location = origin
			ev.Timestamp = &ts
			ev.Completed = true
		}
		timeline = append(timeline, ev)
	}
	return timeline
}

// Advance applies a status transition to the order, updating the timeline and
// delivery bookkeeping. It returns ErrOrderTerminal when the order is already
// delivered or cancelled, and ErrInvalidTransition for a backward or skipping
// move. Payment status is never changed here; payment is a separate act.
func (o *Order) Advance(next OrderStatus, location string, now time.Time) error {
	if IsTerminal(o.Status) {
		return fmt.Errorf("%w: order %s is %s", apperrors.ErrOrderTerminal, o.OrderID, o.Status)
	}
	if !CanTransition(o.Status, next) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, o.Status, next)
	}

	if next == StatusCancelled {
		// Cancellation drops the milestones that will never happen and
		// records its own event, so completed events keep forming a
		// contiguous prefix of the timeline.
		prefix := len(o.Timeline)
		for i, ev := range o.Timeline {
			if !ev.Completed {
				prefix = i
				break
			}
		}
		ts := now
		o.Timeline = append(o.Timeline[:prefix], TimelineEvent{
			Event:     eventLabels[StatusCancelled],
			Location:  location,
			Timestamp: &ts,
			Completed: true,
		})
		o.Status = StatusCancelled
		o.LastUpdatedAt = now
		return nil
	}

	o.completeNextMilestone(location, now)
	o.Status = next
	if next == StatusDelivered {
		ts := now
		o.DeliveredAt = &ts
	}
	o.LastUpdatedAt = now
	return nil
}

// completeNextMilestone flips the first pending event, preserving the
// completed-prefix invariant.
func (o *Order) completeNextMilestone(location string, now time.Time) {
	for i := range o.Timeline {
		if !o.Timeline[i].Completed {
			ts := now
			o.Timeline[i].Location = location
			o.Timeline[i].Timestamp = &ts
			o.Timeline[i].Completed = true
			return
		}
	}
}
