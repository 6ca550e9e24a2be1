package dtg

// base60 is the symbol table of the "x" format. Index = digit value.
const base60 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwx"

// base60Values maps a symbol back to its digit; -1 for unmapped bytes.
var base60Values = func() [256]int8 {
	var v [256]int8
	for i := range v {
		v[i] = -1
	}
	for i := 0; i < len(base60); i++ {
		v[base60[i]] = int8(i)
	}
	return v
}()

func encodeDigit(n int) byte {
	return base60[n]
}

func decodeDigit(c byte) (int, bool) {
	v := base60Values[c]
	return int(v), v >= 0
}

// appendBase60 appends n (n >= 0) most significant digit first.
// Zero is a single "0" symbol.
func appendBase60(dst []byte, n int) []byte {
	if n == 0 {
		return append(dst, encodeDigit(0))
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = encodeDigit(n % 60)
		n /= 60
	}
	return append(dst, buf[i:]...)
}
