package encryption

import (
	"errors"
	"fmt"
)

// ErrCipher is the root of all decryption failures: wrong key, corrupt or
// truncated ciphertext, padding validation failure. Match with errors.Is.
var ErrCipher = errors.New("cipher failure")

var (
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed,
	// typically the result of a wrong key or a tampered final block.
	ErrInvalidPadding = fmt.Errorf("%w: invalid padding", ErrCipher)
	// ErrInvalidBlockSize is returned when the ciphertext length is not a
	// positive multiple of the AES block size.
	ErrInvalidBlockSize = fmt.Errorf("%w: ciphertext is not a multiple of block size", ErrCipher)
	// ErrVectorMismatch is returned when the vector field and the payload
	// prefix disagree.
	ErrVectorMismatch = fmt.Errorf("%w: vector field does not match payload prefix", ErrCipher)
	// ErrVectorSize is returned when the vector is not exactly one AES block.
	ErrVectorSize = fmt.Errorf("%w: vector must be one block", ErrCipher)
)
