package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHour(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"8", "08:00", true},
		{"8:00", "08:00", true},
		{"08.00", "08:00", true},
		{"08:00:00", "08:00", true},
		{"20 hs", "20:00", true},
		{"18h", "18:00", true},
		{"  9:30 ", "09:30", true},
		{"1130", "11:30", true},
		{"25:00", "25:00", true}, // shaped but not bookable; ParseSlot rejects it
		{"", "", false},
		{"abc", "", false},
		{"8:5", "", false},
		{"::", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeHour(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Lunes", "Lunes", true},
		{"lunes", "Lunes", true},
		{"miercoles", "Miércoles", true},
		{"MIÉRCOLES", "Miércoles", true},
		{"SÁBADO", "Sábado", true},
		{"sabado ", "Sábado", true},
		{"martess", "", false},
		{"Domingo", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeDay(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseSlot(t *testing.T) {
	slot, ok := ParseSlot("lunes 8")
	require.True(t, ok)
	assert.Equal(t, Slot{Dia: "Lunes", Hora: "08:00"}, slot)
	assert.Equal(t, "Lunes 08:00", slot.Key())

	// Shaped hour outside the bookable set is rejected.
	_, ok = ParseSlot("Lunes 12:00")
	assert.False(t, ok)
	_, ok = ParseSlot("Lunes 25:00")
	assert.False(t, ok)
	_, ok = ParseSlot("Feriado 08:00")
	assert.False(t, ok)
	_, ok = ParseSlot("Lunes")
	assert.False(t, ok)
}

func TestParseListDropsInvalidAndDuplicates(t *testing.T) {
	slots := ParseList("lunes 8, Feriado 09:00, Martes 25:00, LUNES 08:00, sabado 20hs")
	require.Len(t, slots, 2)
	assert.Equal(t, Slot{Dia: "Lunes", Hora: "08:00"}, slots[0])
	assert.Equal(t, Slot{Dia: "Sábado", Hora: "20:00"}, slots[1])
}

func TestFormatListOrdersDayThenHour(t *testing.T) {
	slots := []Slot{
		{Dia: "Sábado", Hora: "09:00"},
		{Dia: "Lunes", Hora: "20:00"},
		{Dia: "Lunes", Hora: "08:00"},
		{Dia: "Miércoles", Hora: "15:00"},
	}
	assert.Equal(t, "Lunes 08:00,Lunes 20:00,Miércoles 15:00,Sábado 09:00", FormatList(slots))
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"martes 9, lunes 8hs",
		"Sábado 20:00:00,sabado 08.00",
		"viernes 19, viernes 19:00, jueves 10",
		"",
		"basura, mas basura",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once), "input %q", in)
	}
	assert.Equal(t, "Lunes 08:00,Martes 09:00", Canonicalize("martes 9, lunes 8hs"))
}

func TestDayOrderSQL(t *testing.T) {
	sql := DayOrderSQL("c.dia")
	assert.Contains(t, sql, "CASE c.dia")
	assert.Contains(t, sql, "WHEN 'Lunes' THEN 0")
	assert.Contains(t, sql, "WHEN 'Sábado' THEN 5")
}
