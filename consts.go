package signed

const (
	signBit32 = 0x80000000
	signBit64 = 0x8000000000000000

	intSize = 32 << (^uint(0) >> 63)
)
