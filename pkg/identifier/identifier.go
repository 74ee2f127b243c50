package identifier

import (
	"errors"
	"strings"

	"github.com/mutagen-io/treediff/pkg/encoding"
	"github.com/mutagen-io/treediff/pkg/random"
)

const (
	// PrefixSnapshot is the prefix used for snapshot identifiers.
	PrefixSnapshot = "snap"

	// requiredPrefixLength is the required length for identifier prefixes.
	requiredPrefixLength = 4
	// targetBase62Length is the length of a Base62-encoded value of
	// random.CollisionResistantLength bytes. Encoded values are left-padded
	// with zeros to this length so that identifiers have a fixed size.
	targetBase62Length = 43
)

// isValidPrefix determines whether or not a prefix consists of exactly
// requiredPrefixLength lowercase ASCII letters.
func isValidPrefix(prefix string) bool {
	if len(prefix) != requiredPrefixLength {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < 'a' || prefix[i] > 'z' {
			return false
		}
	}
	return true
}

// New generates a new collision-resistant identifier with the specified prefix.
// The prefix must be four lowercase ASCII letters.
func New(prefix string) (string, error) {
	// Validate the prefix.
	if !isValidPrefix(prefix) {
		return "", errors.New("invalid identifier prefix")
	}

	// Create the random value.
	value, err := random.New(random.CollisionResistantLength)
	if err != nil {
		return "", err
	}

	// Encode the random value and left-pad it to the target length.
	encoded := encoding.EncodeBase62(value)
	if padding := targetBase62Length - len(encoded); padding > 0 {
		encoded = strings.Repeat(encoding.Base62Alphabet[:1], padding) + encoded
	}

	// Done.
	return prefix + "_" + encoded, nil
}

// IsValid determines whether or not a string is a valid identifier.
func IsValid(value string) bool {
	// Check the overall length and the prefix separator.
	if len(value) != requiredPrefixLength+1+targetBase62Length {
		return false
	} else if value[requiredPrefixLength] != '_' {
		return false
	}

	// Check the prefix.
	if !isValidPrefix(value[:requiredPrefixLength]) {
		return false
	}

	// Check the encoded portion.
	for _, r := range value[requiredPrefixLength+1:] {
		if !strings.ContainsRune(encoding.Base62Alphabet, r) {
			return false
		}
	}
	return true
}
