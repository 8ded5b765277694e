package wallet

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in paise. Ledger arithmetic stays in integers; rupees
// only appear at the rendering edge.
type Money int64

func FromPaise(p int64) Money {
	return Money(p)
}

func FromRupees(r int64) Money {
	return Money(r * 100)
}

func (m Money) Paise() int64 {
	return int64(m)
}

func (m Money) Neg() Money {
	return -m
}

func (m Money) IsNegative() bool {
	return m < 0
}

// Rupees renders the amount the way the ledger shows it to users: whole
// rupees without decimals, otherwise two decimal places.
func (m Money) Rupees() string {
	if m%100 == 0 {
		return strconv.FormatInt(int64(m)/100, 10)
	}
	s := fmt.Sprintf("%.2f", float64(m)/100)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

func (m Money) String() string {
	return "₹" + m.Rupees()
}
