package validate

import "strings"

// NIF validates a Portuguese tax identification number: 9 digits with a
// mod-11 weighted check digit in the last position.
func NIF(raw string) Result {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)

	if len(digits) != 9 {
		return fail(ErrInvalidFormat, "NIF inválido (deve ter 9 dígitos)")
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * (9 - i)
	}

	expected := 0
	if remainder := sum % 11; remainder >= 2 {
		expected = 11 - remainder
	}

	if int(digits[8]-'0') != expected {
		return fail(ErrChecksumMismatch, "NIF inválido (dígito de controlo incorreto)")
	}

	return ok(digits)
}

// IBAN validates a Portuguese IBAN: "PT" followed by exactly 23 digits,
// checked with the standard mod-97 algorithm. Other countries are
// deliberately not supported.
func IBAN(raw string) Result {
	iban := strings.ToUpper(stripSpaces(raw))

	if len(iban) != 25 || !strings.HasPrefix(iban, "PT") || !allDigits(iban[2:]) {
		return fail(ErrInvalidFormat, "IBAN inválido")
	}

	// Rearrange as iban[4:] + iban[:4] and reduce mod 97 digit by digit,
	// mapping letters to charCode-55 (A=10 .. Z=35). The incremental
	// remainder avoids big-integer arithmetic.
	rearranged := iban[4:] + iban[:4]
	remainder := 0

	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]

		if c >= '0' && c <= '9' {
			remainder = (remainder*10 + int(c-'0')) % 97
			continue
		}

		v := int(c) - 55
		remainder = (remainder*10 + v/10) % 97
		remainder = (remainder*10 + v%10) % 97
	}

	if remainder != 1 {
		return fail(ErrChecksumMismatch, "IBAN inválido")
	}

	return ok(iban)
}

// FormatIBAN renders a compact IBAN in the display grouping used on forms
// and contract documents: blocks of 4 separated by spaces.
func FormatIBAN(iban string) string {
	iban = strings.ToUpper(stripSpaces(iban))

	var sb strings.Builder

	for i, r := range iban {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// VIN validates a vehicle identification number: exactly 17 characters over
// [A-HJ-NPR-Z0-9] (I, O and Q are excluded per VIN convention). The ISO
// check digit in position 9 is not verified.
func VIN(raw string) Result {
	vin := strings.ToUpper(stripSpaces(raw))

	if len(vin) != 17 || !allVINChars(vin) {
		return fail(ErrInvalidFormat, "Número de chassis inválido (deve ter 17 caracteres)")
	}

	return ok(vin)
}

// LicensePlate validates a Portuguese matrícula. Accepted patterns after
// stripping separators: LL99LL, 99LL99 and 9999LL. Normalized form is the
// hyphenated XX-XX-XX.
func LicensePlate(raw string) Result {
	plate := strings.ToUpper(strings.ReplaceAll(stripSpaces(raw), "-", ""))

	if len(plate) != 6 || !plateShape(plate) {
		return fail(ErrInvalidFormat, "Matrícula inválida (formato: 00-AA-00)")
	}

	return ok(plate[0:2] + "-" + plate[2:4] + "-" + plate[4:6])
}

func plateShape(p string) bool {
	letters := func(s string) bool {
		return s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'A' && s[1] <= 'Z'
	}
	numbers := func(s string) bool {
		return s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
	}

	a, b, c := p[0:2], p[2:4], p[4:6]

	switch {
	case letters(a) && numbers(b) && letters(c): // LL99LL
		return true
	case numbers(a) && letters(b) && numbers(c): // 99LL99
		return true
	case numbers(a) && numbers(b) && letters(c): // 9999LL
		return true
	}

	return false
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ' ':
			return -1
		}

		return r
	}, s)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func allVINChars(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z' && c != 'I' && c != 'O' && c != 'Q':
		default:
			return false
		}
	}

	return true
}
