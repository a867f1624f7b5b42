package mapping

import (
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/jslogistics/jsl-backend/internal/models"
)

// ToModelOrder converts a domain.Order to its database representation.
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:            d.OrderID,
		ClientID:           d.ClientID,
		TrackingNumber:     d.TrackingNumber,
		SenderCompany:      d.SenderCompany,
		SenderContact:      d.SenderContact,
		SenderPhone:        d.SenderPhone,
		SenderAddress:      d.SenderAddress,
		RecipientName:      d.RecipientName,
		RecipientContact:   d.RecipientContact,
		RecipientPhone:     d.RecipientPhone,
		RecipientAddress:   d.RecipientAddress,
		RecipientCity:      d.RecipientCity,
		PackageDescription: d.PackageDescription,
		WeightKg:           d.WeightKg,
		DimensionsCm:       d.DimensionsCm,
		DeclaredValueCOP:   d.DeclaredValueCOP,
		ServiceType:        string(d.ServiceType),
		ShippingCostCOP:    d.ShippingCostCOP,
		PaymentStatus:      string(d.PaymentStatus),
		InvoiceNumber:      d.InvoiceNumber,
		Status:             string(d.Status),
		EstimatedDelivery:  d.EstimatedDelivery,
		DeliveredAt:        d.DeliveredAt,
		Timeline:           ToModelTimeline(d.Timeline),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.LastUpdatedAt,
	}
}

// ToDomainOrder converts a database order row to the domain representation.
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:            m.OrderID,
		ClientID:           m.ClientID,
		TrackingNumber:     m.TrackingNumber,
		SenderCompany:      m.SenderCompany,
		SenderContact:      m.SenderContact,
		SenderPhone:        m.SenderPhone,
		SenderAddress:      m.SenderAddress,
		RecipientName:      m.RecipientName,
		RecipientContact:   m.RecipientContact,
		RecipientPhone:     m.RecipientPhone,
		RecipientAddress:   m.RecipientAddress,
		RecipientCity:      m.RecipientCity,
		PackageDescription: m.PackageDescription,
		WeightKg:           m.WeightKg,
		DimensionsCm:       m.DimensionsCm,
		DeclaredValueCOP:   m.DeclaredValueCOP,
		ServiceType:        domain.ServiceType(m.ServiceType),
		ShippingCostCOP:    m.ShippingCostCOP,
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		InvoiceNumber:      m.InvoiceNumber,
		Status:             domain.OrderStatus(m.Status),
		EstimatedDelivery:  m.EstimatedDelivery,
		DeliveredAt:        m.DeliveredAt,
		Timeline:           ToDomainTimeline(m.Timeline),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelTimeline converts a domain timeline to its stored JSON shape.
func ToModelTimeline(events []domain.TimelineEvent) []models.TimelineEvent {
	out := make([]models.TimelineEvent, len(events))
	for i, ev := range events {
		out[i] = models.TimelineEvent{
			Event:     ev.Event,
			Location:  ev.Location,
			Timestamp: ev.Timestamp,
			Completed: ev.Completed,
		}
	}
	return out
}

// ToDomainTimeline converts a stored timeline to the domain representation.
func ToDomainTimeline(events []models.TimelineEvent) []domain.TimelineEvent {
	out := make([]domain.TimelineEvent, len(events))
	for i, ev := range events {
		out[i] = domain.TimelineEvent{
			Event:     ev.Event,
			Location:  ev.Location,
			Timestamp: ev.Timestamp,
			Completed: ev.Completed,
		}
	}
	return out
}

// ToDomainOrderSlice converts a slice of order rows.
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
