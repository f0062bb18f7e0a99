package backend

// SetMaxBytecodeSize lowers the decompressed bytecode bound for a test.
func SetMaxBytecodeSize(size int64) (restore func()) {
	prev := maxBytecodeSize
	maxBytecodeSize = size
	return func() { maxBytecodeSize = prev }
}
