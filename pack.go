package mcl

// PackUint16 writes v into dest[0:2] little-endian, byte-wise, so that it
// never faults on hosts that require aligned word access. Used by the
// string object header; exported so collaborators building their own
// packed heap layouts can reuse it.
func PackUint16(dest []byte, v uint16) {
	dest[0] = byte(v)
	dest[1] = byte(v >> 8)
}

// UnpackUint16 is the inverse of PackUint16.
func UnpackUint16(src []byte) uint16 {
	return uint16(src[0]) | uint16(src[1])<<8
}
