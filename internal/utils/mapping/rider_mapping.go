package mapping

import (
	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/models"
)

// ToModelRider converts a domain Rider to its model row
func ToModelRider(d domain.Rider) models.Rider {
	return models.Rider{
		RiderID:       d.RiderID,
		Name:          d.Name,
		Phone:         d.Phone,
		CreditBalance: d.CreditBalance,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRider converts a model row to the domain Rider
func ToDomainRider(m models.Rider) domain.Rider {
	return domain.Rider{
		RiderID:       m.RiderID,
		Name:          m.Name,
		Phone:         m.Phone,
		CreditBalance: m.CreditBalance,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRiderSlice converts model rows to domain Riders
func ToDomainRiderSlice(ms []models.Rider) []domain.Rider {
	ds := make([]domain.Rider, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRider(m)
	}
	return ds
}

// ToModelRiderPayment converts a domain RiderPayment to its model row
func ToModelRiderPayment(d domain.RiderPayment) models.RiderPayment {
	return models.RiderPayment{
		RiderPaymentID: d.RiderPaymentID,
		RiderID:        d.RiderID,
		Amount:         d.Amount,
		PaymentDate:    d.PaymentDate,
		PaymentMethod:  string(d.PaymentMethod),
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRiderPayment converts a model row to the domain RiderPayment
func ToDomainRiderPayment(m models.RiderPayment) domain.RiderPayment {
	return domain.RiderPayment{
		RiderPaymentID: m.RiderPaymentID,
		RiderID:        m.RiderID,
		Amount:         m.Amount,
		PaymentDate:    m.PaymentDate,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRiderPaymentSlice converts model rows to domain RiderPayments
func ToDomainRiderPaymentSlice(ms []models.RiderPayment) []domain.RiderPayment {
	ds := make([]domain.RiderPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRiderPayment(m)
	}
	return ds
}
