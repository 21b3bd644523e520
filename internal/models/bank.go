package models

import (
	"fmt"
	"strings"
)

// Bank identifies the institution an extract was exported from.
type Bank string

const (
	BankNubank    Bank = "NUBANK"
	BankSantander Bank = "SANTANDER"
	BankItau      Bank = "ITAU"
	BankBradesco  Bank = "BRADESCO"
	BankCaixa     Bank = "CAIXA"
	BankBB        Bank = "BB"
)

var bankDisplayNames = map[Bank]string{
	BankNubank:    "Nubank",
	BankSantander: "Santander",
	BankItau:      "Itaú",
	BankBradesco:  "Bradesco",
	BankCaixa:     "Caixa Econômica Federal",
	BankBB:        "Banco do Brasil",
}

// AllBanks lists every known bank in declaration order.
func AllBanks() []Bank {
	return []Bank{BankNubank, BankSantander, BankItau, BankBradesco, BankCaixa, BankBB}
}

// ParseBank resolves a bank identifier case-insensitively.
func ParseBank(s string) (Bank, error) {
	b := Bank(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := bankDisplayNames[b]; !ok {
		return "", fmt.Errorf("invalid bank type: %s", s)
	}
	return b, nil
}

// DisplayName returns the human readable bank name.
func (b Bank) DisplayName() string {
	if name, ok := bankDisplayNames[b]; ok {
		return name
	}
	return string(b)
}

func (b Bank) String() string {
	return string(b)
}
