package ptbr

import (
	"testing"
	"time"
)

func TestFormatLong(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.January, 10, 14, 0, 0, 0, time.UTC), "dia 10 de janeiro, para às 14h"},
		{time.Date(2024, time.March, 2, 9, 30, 0, 0, time.UTC), "dia 02 de março, para às 9h"},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "dia 31 de dezembro, para às 0h"},
	}
	for _, c := range cases {
		if got := FormatLong(c.in); got != c.want {
			t.Fatalf("FormatLong(%s): expected %q, got %q", c.in.Format(time.RFC3339), c.want, got)
		}
	}
}
