package encryption

import (
	"bytes"
	"crypto/aes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPkcs7PadUnpad(t *testing.T) {
	t.Parallel()

	for size := range 3 * aes.BlockSize {
		data := bytes.Repeat([]byte{0x5A}, size)

		padded := pkcs7Pad(data, aes.BlockSize)
		require.Zero(t, len(padded)%aes.BlockSize, "size %d", size)
		require.Greater(t, len(padded), size, "padding must always add at least one byte")

		unpadded, err := pkcs7Unpad(padded)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, data, unpadded)
	}
}

func TestPkcs7Unpad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"zero padding byte", append(bytes.Repeat([]byte{0x01}, 15), 0x00)},
		{"padding larger than block", append(bytes.Repeat([]byte{0x01}, 15), 0x11)},
		{"padding larger than data", []byte{0x05}},
		{"inconsistent padding bytes", append(bytes.Repeat([]byte{0x01}, 14), 0x02, 0x03)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := pkcs7Unpad(tt.data)

			require.ErrorIs(t, err, ErrInvalidPadding)
			assert.ErrorIs(t, err, ErrCipher)
		})
	}
}
