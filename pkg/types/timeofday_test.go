package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full clock form", input: "07:00:00", want: "07:00"},
		{name: "short form", input: "08:50", want: "08:50"},
		{name: "dot separator", input: "10.40", want: "10:40"},
		{name: "dot separator keeps minutes", input: "07.30", want: "07:30"},
		{name: "single digit hour", input: "7:30", want: "07:30"},
		{name: "surrounding spaces", input: "  13:30  ", want: "13:30"},
		{name: "stray letters stripped", input: "19h:40", want: "19:40"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "spaces only", input: "   "},
		{name: "hour out of range", input: "24:00"},
		{name: "minute out of range", input: "10:61"},
		{name: "no separator", input: "0730"},
		{name: "garbage", input: "manhã"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTimeOfDay(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestTimeOfDay_Accessors(t *testing.T) {
	v, err := NewTimeOfDay(8, 50)
	require.NoError(t, err)

	assert.Equal(t, 8, v.Hour())
	assert.Equal(t, 50, v.Minute())
	assert.Equal(t, 530, v.Minutes())
	assert.True(t, v.Valid())
	assert.Equal(t, "08:50", v.String())
}

func TestNewTimeOfDay_OutOfRange(t *testing.T) {
	_, err := NewTimeOfDay(24, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeOfDay(10, 60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeOfDay_Ordering(t *testing.T) {
	a, _ := NewTimeOfDay(8, 0)
	b, _ := NewTimeOfDay(10, 0)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	v, _ := NewTimeOfDay(21, 30)

	moved, err := v.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "22:00", moved.String())

	_, err = v.AddMinutes(180)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = v.AddMinutes(-22*60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
