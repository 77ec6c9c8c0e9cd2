// Package cnpj validates Brazilian CNPJ registry numbers (check digits per
// Receita Federal's módulo 11 algorithm).
package cnpj

import "strings"

// Normalizar strips formatting characters, keeping only digits.
func Normalizar(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valido reports whether s is a structurally valid CNPJ. Accepts formatted
// ("12.345.678/0001-95") or bare digit strings.
func Valido(s string) bool {
	d := Normalizar(s)
	if len(d) != 14 {
		return false
	}
	// All-equal sequences (00000000000000 etc.) pass the check digits but are invalid.
	allEqual := true
	for i := 1; i < 14; i++ {
		if d[i] != d[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}
	return digito(d, 12) == int(d[12]-'0') && digito(d, 13) == int(d[13]-'0')
}

// digito computes the check digit over the first n digits of d.
func digito(d string, n int) int {
	peso := 2
	sum := 0
	for i := n - 1; i >= 0; i-- {
		sum += int(d[i]-'0') * peso
		peso++
		if peso > 9 {
			peso = 2
		}
	}
	resto := sum % 11
	if resto < 2 {
		return 0
	}
	return 11 - resto
}
