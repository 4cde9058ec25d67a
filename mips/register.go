package mips

import (
	"strings"
)

// Register is an entry of the register table.
type Register struct {
	Name    string // Canonical ABI name.
	Numeral string // Decimal index.
}

var registerTable = [32]Register{
	{"zero", "0"}, {"at", "1"}, {"v0", "2"}, {"v1", "3"},
	{"a0", "4"}, {"a1", "5"}, {"a2", "6"}, {"a3", "7"},
	{"t0", "8"}, {"t1", "9"}, {"t2", "10"}, {"t3", "11"},
	{"t4", "12"}, {"t5", "13"}, {"t6", "14"}, {"t7", "15"},
	{"s0", "16"}, {"s1", "17"}, {"s2", "18"}, {"s3", "19"},
	{"s4", "20"}, {"s5", "21"}, {"s6", "22"}, {"s7", "23"},
	{"t8", "24"}, {"t9", "25"}, {"k0", "26"}, {"k1", "27"},
	{"gp", "28"}, {"sp", "29"}, {"fp", "30"}, {"ra", "31"},
}

// RegisterName returns the ABI name of a register.
func RegisterName(index uint8) string {
	return registerTable[index&0x1f].Name
}

// RegisterNumeral returns the decimal name of a register.
func RegisterNumeral(index uint8) string {
	return registerTable[index&0x1f].Numeral
}

// ParseRegister resolves a register token such as "$t0" or "$8", in any
// case. The '$' is optional unless strict is set.
func ParseRegister(token string, strict bool) (index uint8, err error) {
	name, ok := strings.CutPrefix(token, "$")
	if !ok && strict {
		err = &ErrToken{Token: token, Err: ErrRegisterPrefix}
		return
	}
	name = strings.ToLower(name)

	for n, reg := range registerTable {
		if reg.Name == name {
			return uint8(n), nil
		}
	}

	for n, reg := range registerTable {
		if reg.Numeral == name {
			return uint8(n), nil
		}
	}

	err = &ErrToken{Token: token, Err: ErrBadRegister}
	return
}
