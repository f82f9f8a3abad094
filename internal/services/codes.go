package services

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	digitAlphabet   = "0123456789"
	tableAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tableCodePrefix = "TABLE-"
)

func randomGroup(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

func joinGroups(alphabet string, groups, length int) (string, error) {
	parts := make([]string, 0, groups)
	for i := 0; i < groups; i++ {
		g, err := randomGroup(alphabet, length)
		if err != nil {
			return "", err
		}
		parts = append(parts, g)
	}
	return strings.Join(parts, "-"), nil
}

// GenerateTicketCode returns a ticket code of the form DDD-DDD-DDD.
// Uniqueness is probabilistic; callers that care check against existing codes.
func GenerateTicketCode() (string, error) {
	return joinGroups(digitAlphabet, 3, 3)
}

// GenerateTableCode returns a table code of the form TABLE-XXX-XXX where X is
// an uppercase letter or digit.
func GenerateTableCode() (string, error) {
	code, err := joinGroups(tableAlphabet, 2, 3)
	if err != nil {
		return "", err
	}
	return tableCodePrefix + code, nil
}
