package roomcode

import (
	"strings"

	"github.com/KirkDiggler/stumped/internal/common/random"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/stumped/internal/common/roomcode Generator

const (
	// Alphabet is the set of characters a join code is drawn from
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the number of characters in a join code
	Length = 6
)

// Generator produces short human-shareable join codes. Uniqueness is
// enforced by the room repository, not here.
type Generator interface {
	Generate() string
}

type generator struct {
	picker random.Picker
}

// New creates a code generator drawing from picker
func New(picker random.Picker) Generator {
	return &generator{picker: picker}
}

// Generate returns Length random characters from Alphabet
func (g *generator) Generate() string {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		b.WriteByte(Alphabet[g.picker.Intn(len(Alphabet))])
	}
	return b.String()
}

// Normalize canonicalizes user-typed codes for lookup
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
