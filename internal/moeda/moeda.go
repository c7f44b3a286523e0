// Package moeda formats decimal amounts for display in a given ISO 4217 currency.
package moeda

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Padrao is the shop's currency.
const Padrao = money.BRL

// Formatar renders valor in the currency codigo, e.g. "R$1.234,56" for BRL.
// Unknown codes fall back to "<valor> <codigo>".
func Formatar(valor decimal.Decimal, codigo string) string {
	codigo = strings.ToUpper(codigo)
	cur := money.GetCurrency(codigo)
	if cur == nil {
		return valor.StringFixed(2) + " " + codigo
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	centavos := valor.Mul(factor).Round(0)
	return money.New(centavos.IntPart(), codigo).Display()
}
