package money

import "strings"

// Portuguese (European) number words used for the "por extenso" amounts in
// contract documents.
var (
	wordsOnes  = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	wordsTeens = []string{"dez", "onze", "doze", "treze", "catorze", "quinze", "dezasseis", "dezassete", "dezoito", "dezanove"}
	wordsTens  = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	wordsHunds = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// InWords renders a cents amount as the Portuguese legal long form used in
// contracts: "quinze mil euros", "três mil trezentos e trinta e três euros
// e trinta e três cêntimos". Supported range is 0 to 999999,99 €, which
// covers every vehicle this business will ever sell.
func InWords(cents int64) string {
	if cents < 0 {
		cents = -cents
	}

	euros := cents / 100
	fraction := int(cents % 100)

	var parts []string

	switch {
	case euros == 0 && fraction == 0:
		parts = append(parts, "zero euros")
	case euros == 1:
		parts = append(parts, "um euro")
	case euros > 0:
		parts = append(parts, numberWords(int(euros))+" euros")
	}

	switch {
	case fraction == 1:
		parts = append(parts, "um cêntimo")
	case fraction > 1:
		parts = append(parts, numberWords(fraction)+" cêntimos")
	}

	return strings.Join(parts, " e ")
}

// numberWords converts 1..999999 to European Portuguese words, applying the
// "e" conjunction before a final group under one hundred or a round
// hundred.
func numberWords(n int) string {
	if n == 0 {
		return "zero"
	}

	if n >= 1000 {
		thousands := n / 1000
		rest := n % 1000

		head := "mil"
		if thousands > 1 {
			head = belowThousand(thousands) + " mil"
		}

		if rest == 0 {
			return head
		}

		joiner := " "
		if rest < 100 || rest%100 == 0 {
			joiner = " e "
		}

		return head + joiner + belowThousand(rest)
	}

	return belowThousand(n)
}

func belowThousand(n int) string {
	if n == 100 {
		return "cem"
	}

	var sb strings.Builder

	if n >= 100 {
		sb.WriteString(wordsHunds[n/100])
		n %= 100

		if n > 0 {
			sb.WriteString(" e ")
		}
	}

	switch {
	case n >= 20:
		sb.WriteString(wordsTens[n/10])

		if n%10 > 0 {
			sb.WriteString(" e ")
			sb.WriteString(wordsOnes[n%10])
		}
	case n >= 10:
		sb.WriteString(wordsTeens[n-10])
	case n > 0:
		sb.WriteString(wordsOnes[n])
	}

	return sb.String()
}
