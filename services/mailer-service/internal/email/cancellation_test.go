package email

import (
	"strings"
	"testing"
)

func validJob() CancellationJob {
	return CancellationJob{
		AppointmentID: "5f3c1a2b-9d8e-4f6a-b1c2-3d4e5f6a7b8c",
		Date:          "2026-09-10T14:00:00Z",
		DateText:      "dia 10 de setembro, para às 14h",
		CanceledAt:    "2026-09-10T09:00:00Z",
		UserName:      "João Silva",
		ProviderID:    "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
		ProviderName:  "Maria Souza",
		ProviderEmail: "maria@example.com",
	}
}

func TestRenderCancellation(t *testing.T) {
	body := RenderCancellation(validJob())

	for _, want := range []string{"Olá, Maria Souza!", "João Silva", "dia 10 de setembro, para às 14h", "cancelado"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestCancellationJobValidate(t *testing.T) {
	if err := validJob().Validate(); err != nil {
		t.Fatalf("valid job rejected: %v", err)
	}

	job := validJob()
	job.ProviderEmail = "  "
	err := job.Validate()
	if err == nil {
		t.Fatal("expected error for missing provider_email")
	}
	if !strings.Contains(err.Error(), "provider_email") {
		t.Fatalf("error does not name the missing field: %v", err)
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := buildMessage("no-reply@agendo.local", "maria@example.com", CancellationSubject, "corpo")

	if !strings.HasPrefix(msg, "From: no-reply@agendo.local\r\n") {
		t.Fatalf("unexpected message prefix: %q", msg[:40])
	}
	if !strings.Contains(msg, "Subject: Agendamento cancelado\r\n") {
		t.Fatalf("missing subject header:\n%s", msg)
	}
	if !strings.HasSuffix(msg, "\r\n\r\ncorpo\r\n") {
		t.Fatalf("body not separated from headers:\n%s", msg)
	}
}
