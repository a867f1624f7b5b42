package mapping

import (
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	"github.com/jslogistics/jsl-backend/internal/models"
)

// ToModelUser converts a domain.User to its database representation.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Company:      d.Company,
		Email:        d.Email,
		Phone:        d.Phone,
		Address:      d.Address,
		NIT:          d.NIT,
		PasswordHash: d.PasswordHash,
		CreditLimit:  d.CreditLimit,
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.LastUpdatedAt,
	}
}

// ToDomainUser converts a database user row to the domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Company:      m.Company,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		NIT:          m.NIT,
		PasswordHash: m.PasswordHash,
		CreditLimit:  m.CreditLimit,
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.UpdatedAt,
		},
	}
}
