package entity

import (
	"bytes"
	"fmt"
	"time"
)

// DateLayout formato de fecha de calendario usado por el backend.
const DateLayout = "2006-01-02"

// Date es una fecha de calendario (sin hora) serializada como "YYYY-MM-DD".
// El valor cero se serializa como null.
type Date struct {
	time.Time
}

// FarFuture sustituye a un "bis" nulo en comparaciones de solapamiento.
var FarFuture = NewDate(9999, time.December, 31)

// NewDate construye una fecha a medianoche UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca t a su fecha de calendario local.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today devuelve la fecha local de hoy.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate interpreta "YYYY-MM-DD"; acepta también un datetime ISO y se queda con la fecha.
func ParseDate(s string) (Date, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return Date{t}, nil
}

// String devuelve "YYYY-MM-DD" o "" para la fecha cero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Before compara solo la fecha de calendario.
func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

// After compara solo la fecha de calendario.
func (d Date) After(o Date) bool { return d.Time.After(o.Time) }

// Equal compara solo la fecha de calendario.
func (d Date) Equal(o Date) bool { return d.Time.Equal(o.Time) }

// MarshalJSON implementa json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implementa json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("fecha inválida %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInclusive número de días de calendario entre from y to, ambos incluidos.
func DaysInclusive(from, to Date) int {
	return int(to.Sub(from.Time).Hours()/24) + 1
}

// OverlapDays días comunes (inclusivos) de [aFrom, aTo] y [bFrom, bTo]; nunca negativo.
func OverlapDays(aFrom, aTo, bFrom, bTo Date) int {
	start := aFrom
	if bFrom.After(start) {
		start = bFrom
	}
	end := aTo
	if bTo.Before(end) {
		end = bTo
	}
	if end.Before(start) {
		return 0
	}
	return DaysInclusive(start, end)
}
