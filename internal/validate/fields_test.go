package validate_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pinklegion/stand/internal/validate"
)

func TestYear(t *testing.T) {
	current := time.Now().Year()

	type testCase struct {
		name      string
		raw       string
		wantValid bool
	}

	tests := []testCase{
		{name: "Valid", raw: "2020", wantValid: true},
		{name: "LowerBound", raw: "1900", wantValid: true},
		{name: "CurrentYear", raw: strconv.Itoa(current), wantValid: true},
		{name: "Trimmed", raw: " 2020 ", wantValid: true},
		{name: "TooOld", raw: "1899"},
		{name: "Future", raw: strconv.Itoa(current + 1)},
		{name: "NotANumber", raw: "abcd"},
		{name: "Empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.Year(tt.raw)

			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.ErrorIs(t, res.Err, validate.ErrInvalidFormat)
			}
		})
	}
}

func TestKilometers(t *testing.T) {
	type testCase struct {
		name           string
		raw            string
		wantValid      bool
		wantNormalized string
	}

	tests := []testCase{
		{name: "Valid", raw: "123456", wantValid: true, wantNormalized: "123456"},
		{name: "Zero", raw: "0", wantValid: true, wantNormalized: "0"},
		{name: "Max", raw: "999999", wantValid: true, wantNormalized: "999999"},
		{name: "FormattedInput", raw: "123.456 km", wantValid: true, wantNormalized: "123456"},
		{name: "OverMax", raw: "1000000"},
		{name: "NoDigits", raw: "km"},
		{name: "Empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.Kilometers(tt.raw)

			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantNormalized, res.Normalized)
			}
		})
	}
}

func TestCitizenCard(t *testing.T) {
	assert.True(t, validate.CitizenCard("12345678").Valid)
	assert.True(t, validate.CitizenCard("12345678 9 ZZ0").Valid)
	assert.False(t, validate.CitizenCard("1234567").Valid)
	assert.False(t, validate.CitizenCard("").Valid)
}
