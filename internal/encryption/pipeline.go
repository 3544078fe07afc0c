package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pierrec/lz4/v4"
)

// Encrypt compresses source and encrypts it under key with a freshly
// generated initialization vector. It returns the vector and the payload,
// where the payload is the raw vector bytes followed by the ciphertext.
func Encrypt(key uuid.UUID, source []byte) (vector, payload []byte, err error) {
	vector = make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, vector); err != nil {
		return nil, nil, fmt.Errorf("generating IV: %w", err)
	}

	var compressed bytes.Buffer

	zw := lz4.NewWriter(&compressed)
	if _, err := zw.Write(source); err != nil {
		return nil, nil, fmt.Errorf("compressing source: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, nil, fmt.Errorf("flushing compression stream: %w", err)
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, nil, fmt.Errorf("creating cipher: %w", err)
	}

	padded := pkcs7Pad(compressed.Bytes(), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, vector).CryptBlocks(ciphertext, padded)

	payload = make([]byte, 0, len(vector)+len(ciphertext))
	payload = append(payload, vector...)
	payload = append(payload, ciphertext...)

	return vector, payload, nil
}

// Decrypt reverses Encrypt: it strips the vector prefix from payload,
// decrypts the remainder under key and the supplied vector, and decompresses
// the result. The field-level vector is authoritative, but the redundant
// copy in the payload prefix must agree with it.
//
// A wrong key or tampered ciphertext surfaces as an error wrapping ErrCipher,
// caught by the padding check or the LZ4 frame validation. Without an
// integrity tag neither check is a hard guarantee, only an overwhelmingly
// probable one.
func Decrypt(key uuid.UUID, vector, payload []byte) ([]byte, error) {
	if len(vector) != aes.BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrVectorSize, len(vector))
	}

	if len(payload) < len(vector) {
		return nil, fmt.Errorf("%w: payload shorter than vector", ErrCipher)
	}

	if !bytes.Equal(vector, payload[:len(vector)]) {
		return nil, ErrVectorMismatch
	}

	body := payload[len(vector):]
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(body))
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	compressed := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, vector).CryptBlocks(compressed, body)

	compressed, err = pkcs7Unpad(compressed)
	if err != nil {
		return nil, err
	}

	plaintext, err := io.ReadAll(lz4.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt compressed stream: %v", ErrCipher, err)
	}

	return plaintext, nil
}
