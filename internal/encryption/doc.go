// Package encryption implements the compress-then-encrypt pipeline behind a
// container: LZ4 frame compression followed by AES-128 in CBC mode with
// PKCS#7 padding, the ciphertext prefixed by its initialization vector.
//
// The 128-bit key identifier is used directly as the AES key with no key
// derivation step. That is a deliberate compatibility choice, not a
// recommended practice: treat the key as secret random material, never as a
// password. CBC carries no integrity tag; tampering is caught indirectly by
// the padding check and the LZ4 frame checksum.
package encryption
