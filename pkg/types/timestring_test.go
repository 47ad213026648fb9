package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"10:00", "10:00", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"10:60", "", true},
		{"10", "", true},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString_DropsSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 5, 1, 10, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("10:30"), ts)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:30:00")))
	assert.Equal(t, TimeString("15:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(123))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}
