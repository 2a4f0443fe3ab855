package roomcode

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/stumped/internal/common/random"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_ShapeOfCode(t *testing.T) {
	gen := New(random.New(&random.Config{Seed: 99}))

	for i := 0; i < 100; i++ {
		code := gen.Generate()
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in %s", r, code)
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB12CD", Normalize("  ab12cd "))
	assert.Equal(t, "", Normalize("   "))
}
