package dtg

import (
	"fmt"
	"strings"
)

const brailleBlank = 0x2800

var (
	brailleTens = [10]rune{0, 0x40, 0x04, 0x44, 0x02, 0x42, 0x06, 0x46, 0x01, 0x41}
	brailleOnes = [10]rune{0, 0x80, 0x20, 0xA0, 0x10, 0x90, 0x30, 0xB0, 0x08, 0x88}
)

// bcdBraille renders a value in 0..99 as one Braille cell: tens in the left
// column pair, ones in the right.
func bcdBraille(n int) rune {
	if n < 0 || n > 99 {
		panic(fmt.Sprintf("dtg: bcd value out of range: %d", n))
	}
	return brailleBlank + brailleTens[n/10] + brailleOnes[n%10]
}

// writeCentury writes year/100 as base-100 cells, most significant first.
// Years below 10000 produce exactly one cell.
func writeCentury(b *strings.Builder, century int) {
	if century >= 100 {
		writeCentury(b, century/100)
	}
	b.WriteRune(bcdBraille(century % 100))
}
