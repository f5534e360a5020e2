// Package canon implements the canonical textual form fed to the digester
// for floating-point values (§4.4 of the object hash core).
package canon

import (
	"math"
	"strconv"
	"strings"
)

// Float converts f into its deterministic textual form:
//
//   - +0.0 and -0.0 both produce "+0:"
//   - any NaN produces "NaN"
//   - +Inf produces "Infinity", -Inf produces "-Infinity"
//   - otherwise, sign || exponent || ':' || mantissa, where exponent is the
//     signed decimal integer e such that f/2^e is in (1/2, 1], and mantissa
//     is the binary expansion of f in that range.
func Float(f float64) string {
	if f == 0 {
		return "+0:"
	}

	if math.IsNaN(f) {
		return "NaN"
	}

	if math.IsInf(f, 1) {
		return "Infinity"
	}

	if math.IsInf(f, -1) {
		return "-Infinity"
	}

	var sign string
	if f < 0 {
		sign = "-"
		f = -f
	} else {
		sign = "+"
	}

	e := 0
	for f > 1 {
		f = f / 2
		e++
	}
	for f <= 0.5 {
		f = f * 2
		e--
	}

	var mantissa strings.Builder
	for f != 0 {
		if f >= 1 {
			mantissa.WriteByte('1')
			f -= 1
		} else {
			mantissa.WriteByte('0')
		}
		f *= 2
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(strconv.Itoa(e))
	b.WriteByte(':')
	b.WriteString(mantissa.String())

	return b.String()
}
