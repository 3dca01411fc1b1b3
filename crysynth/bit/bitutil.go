// Package bit holds the byte and bit field helpers used by the driver dump
// codec and the noise register.
package bit

// Combine joins a high and a low byte into a 16 bit value.
func Combine(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// IsSet reports whether the bit at index of value is 1.
func IsSet(index, value uint8) bool {
	return (value>>index)&1 == 1
}

// Value16 returns the bit at index of value as 0 or 1.
func Value16(index uint8, value uint16) uint16 {
	return (value >> index) & 1
}

// Assign16 returns value with the bit at index replaced by the low bit of b.
func Assign16(index uint8, value, b uint16) uint16 {
	return (value &^ (1 << index)) | ((b & 1) << index)
}

// Low returns the low byte of value.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high byte of value.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// ExtractBits returns bits highBit..lowBit of value (inclusive), shifted
// down to bit 0: ExtractBits(0b11010110, 6, 4) == 0b101.
func ExtractBits(value uint8, highBit, lowBit uint8) uint8 {
	width := highBit - lowBit + 1
	return (value >> lowBit) & uint8(1<<width-1)
}
