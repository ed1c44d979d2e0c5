package common

// WipeByteArray overwrites b with zeros. It is used to drop raw password
// bytes read from the terminal once they have been handed over.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
