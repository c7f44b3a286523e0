// Package validacao holds the Brazilian document and address format checks
// shared by the request validator and the services.
package validacao

import (
	"regexp"
	"strings"
	"time"
)

var (
	reTelefone = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	reCEP      = regexp.MustCompile(`^\d{5}-\d{3}$`)
	reUF       = regexp.MustCompile(`^[A-Z]{2}$`)
)

// SoDigitos strips every non-digit character.
func SoDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPF validates the two mod-11 check digits. Formatting characters are
// ignored; sequences of one repeated digit are rejected.
func CPF(cpf string) bool {
	d := SoDigitos(cpf)
	if len(d) != 11 || strings.Count(d, d[:1]) == 11 {
		return false
	}
	return digitoCPF(d[:9], 10) == d[9] && digitoCPF(d[:10], 11) == d[10]
}

func digitoCPF(base string, peso int) byte {
	soma := 0
	for i := 0; i < len(base); i++ {
		soma += int(base[i]-'0') * (peso - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		resto = 0
	}
	return byte('0' + resto)
}

// CNPJ only checks the length: 14 digits.
func CNPJ(cnpj string) bool {
	return len(SoDigitos(cnpj)) == 14
}

func Telefone(s string) bool { return reTelefone.MatchString(s) }
func CEP(s string) bool      { return reCEP.MatchString(s) }
func UF(s string) bool       { return reUF.MatchString(s) }

// Idade returns the age in whole years at instant em.
func Idade(nascimento, em time.Time) int {
	anos := em.Year() - nascimento.Year()
	if em.Month() < nascimento.Month() || (em.Month() == nascimento.Month() && em.Day() < nascimento.Day()) {
		anos--
	}
	return anos
}
