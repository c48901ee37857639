package appointment

import (
	"time"

	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Approve(ap *models.Appointment, now time.Time) error {
	if err := CanApprove(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Reject(ap *models.Appointment, now time.Time) error {
	if err := CanReject(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	ap.RejectedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Reschedule move o agendamento para um novo slot já validado pelo use case.
// O status é preservado: um pendente continua pendente após remarcação.
func Reschedule(ap *models.Appointment, date string, slotTime string, start, end time.Time, now time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = date
	ap.SlotTime = slotTime
	ap.StartTime = start
	ap.EndTime = end
	ap.RescheduledAt = &now
	return nil
}
