// Package ptbr renders dates in Brazilian Portuguese for user-facing
// notification and mail copy.
package ptbr

import (
	"fmt"
	"time"
)

var months = [...]string{
	"janeiro",
	"fevereiro",
	"março",
	"abril",
	"maio",
	"junho",
	"julho",
	"agosto",
	"setembro",
	"outubro",
	"novembro",
	"dezembro",
}

// FormatLong renders t as `dia DD de <mês>, para às Hh`,
// e.g. `dia 10 de janeiro, para às 14h`.
//
// The day and hour come from t's location; the caller owns the choice.
// Appointment slots are stored as UTC whole hours, so callers render UTC
// unless they convert first.
func FormatLong(t time.Time) string {
	return fmt.Sprintf("dia %02d de %s, para às %dh", t.Day(), months[t.Month()-1], t.Hour())
}
