package mips

import (
	"strconv"
)

// bounds returns the inclusive value range of a field.
func bounds(signed bool, width int) (lo, hi int64) {
	if signed {
		return -(int64(1) << (width - 1)), (int64(1) << (width - 1)) - 1
	}
	return 0, (int64(1) << width) - 1
}

// ParseValue parses a literal for a field of the given signedness and bit
// width.
//
// Decimal literals are unconstrained in digit count but must lie inside the
// field's range. Hexadecimal (0x) literals must have exactly ceil(width/4)
// digits and binary (0b) literals exactly width digits; their bit pattern is
// sign-extended for signed fields.
func ParseValue(token string, signed bool, width int) (value int64, err error) {
	defer func() {
		if err != nil {
			err = &ErrToken{Token: token, Err: err}
		}
	}()

	if len(token) > 1 && token[0] == '0' {
		switch token[1] {
		case 'x', 'X':
			return parsePattern(token[2:], 4, signed, width)
		case 'b', 'B':
			return parsePattern(token[2:], 1, signed, width)
		default:
			err = ErrBadRadix
			return
		}
	}

	return parseDecimal(token, signed, width)
}

// parseDecimal parses an optionally signed base-10 literal.
func parseDecimal(token string, signed bool, width int) (value int64, err error) {
	negative := false
	digits := token
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		negative = digits[0] == '-'
		digits = digits[1:]
	}

	if len(digits) == 0 {
		err = ErrBadDecimal
		return
	}
	for _, c := range []byte(digits) {
		if c < '0' || c > '9' {
			err = ErrBadDecimal
			return
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		err = ErrBadRadix
		return
	}

	lo, hi := bounds(signed, width)

	magnitude, perr := strconv.ParseUint(digits, 10, 64)
	if perr != nil {
		// Only a range failure is possible past the digit check.
		err = ErrRangeOverflow
		return
	}

	if negative {
		if magnitude != 0 && !signed {
			err = ErrRangeSign
			return
		}
		if magnitude > uint64(-lo) {
			err = ErrRangeOverflow
			return
		}
		value = -int64(magnitude)
		return
	}

	if magnitude > uint64(hi) {
		err = ErrRangeOverflow
		return
	}

	value = int64(magnitude)
	return
}

// parsePattern parses the digits of a hex (bits=4) or binary (bits=1)
// literal that must exactly fill the field.
func parsePattern(digits string, bits int, signed bool, width int) (value int64, err error) {
	need := (width + bits - 1) / bits

	short, long, bad := ErrHexShort, ErrHexLong, ErrHexDigit
	if bits == 1 {
		short, long, bad = ErrBinShort, ErrBinLong, ErrBinDigit
	}

	for _, c := range []byte(digits) {
		if digitValue(c) >= 1<<bits {
			err = bad
			return
		}
	}

	switch {
	case len(digits) < need:
		err = short
		return
	case len(digits) > need:
		err = long
		return
	}

	var pattern uint64
	for _, c := range []byte(digits) {
		pattern = (pattern << bits) | uint64(digitValue(c))
	}

	if pattern >= uint64(1)<<width {
		err = ErrRangeOverflow
		return
	}

	value = int64(pattern)
	if signed && pattern&(uint64(1)<<(width-1)) != 0 {
		value -= int64(1) << width
	}

	return
}

// digitValue returns the value of a hex digit, or 16 for anything else.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 16
}

// ParseWord parses a literal for a full 32-bit instruction word. In strict
// mode the literal must carry a 0x or 0b prefix.
func ParseWord(token string, strict bool) (word Word, err error) {
	if strict && !hasRadixPrefix(token) {
		err = &ErrToken{Token: token, Err: ErrPrefixMissing}
		return
	}

	value, err := ParseValue(token, false, 32)
	if err != nil {
		return
	}

	word = Word(value)
	return
}

func hasRadixPrefix(token string) bool {
	if len(token) < 2 || token[0] != '0' {
		return false
	}
	switch token[1] {
	case 'x', 'X', 'b', 'B':
		return true
	}
	return false
}
