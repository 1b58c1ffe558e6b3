package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// CodeLength is the length of a verification code
const CodeLength = 8

// CodeAlphabet is the alphabet verification codes are drawn from.
// Upper/lower/digits gives 62^8 possibilities for an 8-char code.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateCode generates a cryptographically secure verification code
func GenerateCode() (string, error) {
	buf := make([]byte, CodeLength)
	max := big.NewInt(int64(len(CodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = CodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// Hash hashes an opaque token using SHA-256 (for session storage)
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
