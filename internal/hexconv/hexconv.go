package hexconv

// Invalid marks bytes which aren't hexadecimal digits in the Halfbyte table.
const Invalid = 0xff

// Halfbyte maps a hexadecimal digit to its value. Any other byte is mapped to Invalid,
// so OR-ing two results and comparing with 0x0f validates both at once.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = Invalid
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 0xa
		table[c-'a'+'A'] = c - 'a' + 0xa
	}

	return table
}()
