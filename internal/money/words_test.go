package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pinklegion/stand/internal/money"
)

func TestInWords(t *testing.T) {
	type testCase struct {
		name  string
		cents int64
		want  string
	}

	tests := []testCase{
		{name: "Zero", cents: 0, want: "zero euros"},
		{name: "OneCent", cents: 1, want: "um cêntimo"},
		{name: "FiftyCents", cents: 50, want: "cinquenta cêntimos"},
		{name: "OneEuro", cents: 100, want: "um euro"},
		{name: "OneEuroOneCent", cents: 101, want: "um euro e um cêntimo"},
		{name: "TwentyOne", cents: 2100, want: "vinte e um euros"},
		{name: "EuropeanTeens", cents: 1600, want: "dezasseis euros"},
		{name: "Catorze", cents: 1400, want: "catorze euros"},
		{name: "Dezanove", cents: 1900, want: "dezanove euros"},
		{name: "ExactHundred", cents: 10000, want: "cem euros"},
		{name: "HundredAndOne", cents: 10100, want: "cento e um euros"},
		{name: "Thousand", cents: 100000, want: "mil euros"},
		{name: "ThousandAndHundred", cents: 110000, want: "mil e cem euros"},
		{name: "ThousandAndFifty", cents: 105000, want: "mil e cinquenta euros"},
		{name: "FifteenThousand", cents: 1500000, want: "quinze mil euros"},
		{
			name:  "InstallmentWithDrift",
			cents: 333333,
			want:  "três mil trezentos e trinta e três euros e trinta e três cêntimos",
		},
		{
			name:  "LargeAmount",
			cents: 12345678,
			want:  "cento e vinte e três mil quatrocentos e cinquenta e seis euros e setenta e oito cêntimos",
		},
		{name: "NegativeUsesAbsolute", cents: -100, want: "um euro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.InWords(tt.cents))
		})
	}
}
