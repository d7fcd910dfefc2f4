package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Date("2024-01-05"), DateOf(ts))
}

func TestDateValidate(t *testing.T) {
	cases := []struct {
		name string
		date Date
		err  error
	}{
		{"valid", "2024-01-05", nil},
		{"empty", "", ErrMissingDate},
		{"wrong separator", "2024/01/05", ErrInvalidDate},
		{"day first", "05-01-2024", ErrInvalidDate},
		{"month out of range", "2024-13-01", ErrInvalidDate},
		{"not a date", "yesterday", ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.date.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestDateAfter(t *testing.T) {
	assert.True(t, Date("2024-01-06").After("2024-01-05"))
	assert.False(t, Date("2024-01-05").After("2024-01-05"))
	assert.False(t, Date("2023-12-31").After("2024-01-01"))
}
