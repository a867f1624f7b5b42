package mapping

import (
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/jslogistics/jsl-backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its database representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ClientID:      d.ClientID,
		OrderID:       d.OrderID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Date:          d.Date,
		Status:        string(d.Status),
	}
}

// ToDomainTransaction converts a transaction row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ClientID:      m.ClientID,
		OrderID:       m.OrderID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.Date,
		Status:        domain.TransactionStatus(m.Status),
	}
}

// ToDomainTransactionSlice converts a slice of transaction rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
