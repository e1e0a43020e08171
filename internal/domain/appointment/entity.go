package appointment

import (
	"time"

	"github.com/nobrecorte/booking-api/internal/httperr"
	"github.com/nobrecorte/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CancelPolicy gates client-initiated cancellations. Barbers are exempt.
type CancelPolicy struct {
	MinNotice time.Duration
}

// Cancel applies the cancellation transition. Returns changed=false for the
// idempotent already-canceled case, where the record is returned untouched.
func Cancel(ap *models.Appointment, actor Actor, reason string, now time.Time, policy CancelPolicy) (bool, error) {
	if Status(ap.Status) == StatusCanceled {
		return false, nil
	}

	var owner bool
	switch actor.Role {
	case RoleClient:
		owner = ap.ClientID == actor.ID
	case RoleBarber:
		owner = ap.BarberID == actor.ID
	}
	if !owner {
		return false, httperr.ForbiddenErr("not_owner", "Only the owning client or barber may cancel.")
	}

	if Status(ap.Status) == StatusCompleted {
		return false, httperr.InvalidStateErr("invalid_state", "A completed appointment cannot be canceled.")
	}

	if actor.Role == RoleClient {
		if ap.AppointmentTime.Sub(now) < policy.MinNotice {
			return false, httperr.PolicyErr("cancellation_window_passed", "Clients may only cancel before the minimum notice window.")
		}
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	ap.CanceledBy = actor.Role.String()
	ap.CancelReason = reason
	return true, nil
}

// Confirm moves pending (or re-confirms confirmed) to confirmed. Terminal
// states reject.
func Confirm(ap *models.Appointment, barberID uint) error {
	if ap.BarberID != barberID {
		return httperr.ForbiddenErr("not_owner", "Only the owning barber may confirm.")
	}
	if Status(ap.Status).IsTerminal() {
		return httperr.InvalidStateErr("invalid_state", "Cannot confirm in the current status.")
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment, barberID uint) error {
	if ap.BarberID != barberID {
		return httperr.ForbiddenErr("not_owner", "Only the owning barber may complete.")
	}
	if Status(ap.Status).IsTerminal() {
		return httperr.InvalidStateErr("invalid_state", "Cannot complete in the current status.")
	}

	ap.Status = string(StatusCompleted)
	return nil
}

// MarkPaid flips the payment sub-state. Deliberately not gated on the
// appointment status: the barber can register a manual payment at any point.
func MarkPaid(ap *models.Appointment, barberID uint) (bool, error) {
	if ap.BarberID != barberID {
		return false, httperr.ForbiddenErr("not_owner", "Only the owning barber may mark as paid.")
	}
	if PaymentStatus(ap.PaymentStatus) == PaymentPaid {
		return false, nil
	}

	ap.PaymentStatus = string(PaymentPaid)
	return true, nil
}
