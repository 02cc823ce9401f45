package util

// -----------------------------------------------------------------------------

// WipeBytes zeros the given memory.
func WipeBytes(v []byte) {
	vLen := len(v)
	if vLen > 0 {
		v[0] = 0
		for ofs := 1; ofs < vLen; ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}

// WipeAll zeros every byte slice in the given set.
func WipeAll(v ...[]byte) {
	for idx := range v {
		WipeBytes(v[idx])
	}
}
