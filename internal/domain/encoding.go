package domain

import (
	"encoding/binary"
	"fmt"
)

// Itob encodes v as 8 big-endian bytes, the integer form used for action
// arguments and minted notes.
func Itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// Btoi decodes up to 8 big-endian bytes. An empty slice decodes to 0.
func Btoi(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("%w: integer argument is %d bytes", ErrInvalidArgument, len(b))
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// EncodeArgs converts integer arguments to their wire form
func EncodeArgs(values ...uint64) [][]byte {
	args := make([][]byte, len(values))
	for i, v := range values {
		args[i] = Itob(v)
	}
	return args
}
