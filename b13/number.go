package b13

import (
	"fmt"
	"strings"
)

// Base is the numeral radix.
const Base = 13

// MaxDigit bounds the balanced digit range: every normalized digit lies
// in [-MaxDigit, +MaxDigit].
const MaxDigit = Base / 2 // 6

// Number is a balanced base-13 integer: little-endian digits, each in
// [-6, +6] after normalization. The zero value represents 0. Numbers are
// immutable; Add and Sub return fresh values.
type Number struct {
	digits []int
}

// New builds a Number from little-endian digit coefficients
// (value = c₀ + c₁·13 + c₂·13² + ...). Digits of any magnitude are
// accepted and normalized into the balanced range.
func New(digits ...int) Number {
	out := make([]int, len(digits))
	copy(out, digits)

	return Number{digits: normalize(out)}
}

// FromInt converts a regular integer to its balanced representation.
// Complexity: O(log₁₃ |v|).
func FromInt(v int64) Number {
	if v == 0 {
		return Number{}
	}
	var digits []int
	for v != 0 {
		// Balanced remainder in [-6, +6]; the quotient absorbs the rest.
		d := int(v % Base)
		if d > MaxDigit {
			d -= Base
		} else if d < -MaxDigit {
			d += Base
		}
		digits = append(digits, d)
		v = (v - int64(d)) / Base
	}

	return Number{digits: digits}
}

// normalize brings every digit into [-6, +6] with a left-to-right carry
// pass, appends any residual carry digits, and trims trailing zeros.
func normalize(digits []int) []int {
	carry := 0
	for i := range digits {
		total := digits[i] + carry
		// Balanced reduction: digit ∈ [-6,+6], carry takes the rest.
		d := total % Base
		if d > MaxDigit {
			d -= Base
		} else if d < -MaxDigit {
			d += Base
		}
		digits[i] = d
		carry = (total - d) / Base
	}
	for carry != 0 {
		d := carry % Base
		if d > MaxDigit {
			d -= Base
		} else if d < -MaxDigit {
			d += Base
		}
		digits = append(digits, d)
		carry = (carry - d) / Base
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		return nil
	}

	return digits
}

// Digits returns a copy of the normalized little-endian digits
// (empty for zero).
func (n Number) Digits() []int {
	out := make([]int, len(n.digits))
	copy(out, n.digits)

	return out
}

// IsZero reports whether n represents 0.
func (n Number) IsZero() bool { return len(n.digits) == 0 }

// Int64 evaluates the numeral as a regular integer.
// Complexity: O(len(digits)).
func (n Number) Int64() int64 {
	var result, place int64 = 0, 1
	for _, d := range n.digits {
		result += int64(d) * place
		place *= Base
	}

	return result
}

// Add returns n + m, digit-wise with balanced carries.
func (n Number) Add(m Number) Number {
	width := len(n.digits)
	if len(m.digits) > width {
		width = len(m.digits)
	}
	sum := make([]int, width)
	for i := range sum {
		if i < len(n.digits) {
			sum[i] += n.digits[i]
		}
		if i < len(m.digits) {
			sum[i] += m.digits[i]
		}
	}

	return Number{digits: normalize(sum)}
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	width := len(n.digits)
	if len(m.digits) > width {
		width = len(m.digits)
	}
	diff := make([]int, width)
	for i := range diff {
		if i < len(n.digits) {
			diff[i] += n.digits[i]
		}
		if i < len(m.digits) {
			diff[i] -= m.digits[i]
		}
	}

	return Number{digits: normalize(diff)}
}

// Neg returns -n. In a balanced system negation is a digit-wise flip;
// no carries can arise.
func (n Number) Neg() Number {
	if n.IsZero() {
		return Number{}
	}
	out := make([]int, len(n.digits))
	for i, d := range n.digits {
		out[i] = -d
	}

	return Number{digits: out}
}

// String renders the numeral as a polynomial in 13, lowest place first,
// e.g. "3 + -2*13 + 1*13^2". Zero renders as "0".
func (n Number) String() string {
	if n.IsZero() {
		return "0"
	}
	var terms []string
	for i, d := range n.digits {
		if d == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%d", d))
		case 1:
			terms = append(terms, fmt.Sprintf("%d*13", d))
		default:
			terms = append(terms, fmt.Sprintf("%d*13^%d", d, i))
		}
	}

	return strings.Join(terms, " + ")
}
