package repo

import (
	"crypto/rand"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// IDGenerator returns a fresh opaque identifier for a created entity. IDs are
// practically collision-free; no stronger uniqueness is guaranteed.
type IDGenerator func() string

// shortIDLength is the length of ids from the default scheme.
const shortIDLength = 6

// shortIDAlphabet is the character set of the default scheme.
const shortIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ShortID generates a 6-character random alphanumeric id. This is the default
// scheme; ids are short enough to retype from a listing page.
func ShortID() string {
	buf := make([]byte, shortIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform source is broken.
		panic("id generation: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = shortIDAlphabet[int(b)%len(shortIDAlphabet)]
	}
	return string(buf)
}

// UUIDID generates a UUID v7, falling back to v4 if v7 generation fails.
func UUIDID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// GeneratorFor returns the IDGenerator for a configured scheme name. Unknown
// or empty names select the default short scheme.
func GeneratorFor(scheme string) IDGenerator {
	if scheme == types.IDSchemeUUID {
		return UUIDID
	}
	return ShortID
}
