package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// DateOnly é uma data de calendário (sem hora, sem fuso). No JSON ela vai e
// volta como "YYYY-MM-DD"; qualquer outro formato é erro de entrada.
type DateOnly struct{ time.Time }

func From(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Parse(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(layout, s)
	if err != nil {
		return fmt.Errorf("dateonly: formato inválido %q (esperado YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}

func (d DateOnly) String() string {
	return d.Time.Format(layout)
}

// MarshalJSON: sempre "YYYY-MM-DD".
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON rejeita qualquer coisa fora de "YYYY-MM-DD".
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("dateonly: esperado string JSON, recebido %s", s)
	}
	return d.parse(s[1 : len(s)-1])
}

// Scan: aceita time.Time ou texto ("YYYY-MM-DD"), dependendo do driver.
func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = From(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dateonly: tipo %T não suportado no Scan", v)
	}
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (DateOnly) GormDataType() string {
	return "date"
}
