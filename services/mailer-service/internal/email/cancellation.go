package email

import (
	"errors"
	"fmt"
	"strings"
)

// CancellationJob mirrors the payload enqueued by the appointment service
// when a cancellation succeeds. It is a snapshot: the mail renders from these
// fields alone, with no lookup of rows that may have changed since.
type CancellationJob struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"`
	DateText      string `json:"date_text"`
	CanceledAt    string `json:"canceled_at"`
	UserName      string `json:"user_name"`
	ProviderID    string `json:"provider_id"`
	ProviderName  string `json:"provider_name"`
	ProviderEmail string `json:"provider_email"`
}

// Validate checks the fields the mail cannot render without.
func (j CancellationJob) Validate() error {
	var missing []string
	if strings.TrimSpace(j.AppointmentID) == "" {
		missing = append(missing, "appointment_id")
	}
	if strings.TrimSpace(j.ProviderEmail) == "" {
		missing = append(missing, "provider_email")
	}
	if strings.TrimSpace(j.ProviderName) == "" {
		missing = append(missing, "provider_name")
	}
	if strings.TrimSpace(j.UserName) == "" {
		missing = append(missing, "user_name")
	}
	if strings.TrimSpace(j.DateText) == "" {
		missing = append(missing, "date_text")
	}
	if len(missing) > 0 {
		return errors.New("missing fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// CancellationSubject is the subject line for every cancellation mail.
const CancellationSubject = "Agendamento cancelado"

// RenderCancellation builds the plain-text body addressed to the provider.
func RenderCancellation(job CancellationJob) string {
	return fmt.Sprintf(
		"Olá, %s!\n\nHouve um cancelamento de horário: o agendamento de %s, %s, foi cancelado.\n\nEquipe Agendo",
		job.ProviderName,
		job.UserName,
		job.DateText,
	)
}
