package validate

import (
	"strconv"
	"strings"
	"time"
)

const maxKilometers = 999999

// Year validates a vehicle fabrication year: 1900 up to the current year.
func Year(raw string) Result {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year < 1900 || year > time.Now().Year() {
		return fail(ErrInvalidFormat, "Ano inválido")
	}

	return ok(strconv.Itoa(year))
}

// Kilometers validates a mileage reading: 0 to 999999 after stripping any
// non-digit characters (the forms allow "123.456 km" style input).
func Kilometers(raw string) Result {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)

	if digits == "" {
		return fail(ErrInvalidFormat, "Quilometragem inválida")
	}

	km, err := strconv.Atoi(digits)
	if err != nil || km > maxKilometers {
		return fail(ErrInvalidFormat, "Quilometragem inválida")
	}

	return ok(strconv.Itoa(km))
}

// CitizenCard validates a cartão de cidadão number. Only a minimum length
// is enforced, matching the form behavior.
func CitizenCard(raw string) Result {
	cc := strings.TrimSpace(raw)
	if len(cc) < 8 {
		return fail(ErrInvalidFormat, "Número do Cartão de Cidadão inválido")
	}

	return ok(cc)
}
