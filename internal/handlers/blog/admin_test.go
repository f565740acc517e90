package blog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExcerpt(t *testing.T) {
	t.Run("contenu court repris tel quel", func(t *testing.T) {
		assert.Equal(t, "Petit article", defaultExcerpt("Petit article"))
	})

	t.Run("contenu long tronqué à 150 caractères", func(t *testing.T) {
		content := strings.Repeat("a", 300)
		excerpt := defaultExcerpt(content)

		assert.Len(t, excerpt, excerptLength+3)
		assert.True(t, strings.HasSuffix(excerpt, "..."))
		assert.Equal(t, content[:excerptLength], strings.TrimSuffix(excerpt, "..."))
	})

	t.Run("contenu de exactement 150 caractères non tronqué", func(t *testing.T) {
		content := strings.Repeat("b", excerptLength)
		assert.Equal(t, content, defaultExcerpt(content))
	})

	t.Run("troncature sur une frontière de caractère, pas d'octet", func(t *testing.T) {
		// Un "é" à cheval sur la limite ne doit jamais être coupé en deux
		content := strings.Repeat("a", excerptLength-1) + "étéàçù" + strings.Repeat("b", 200)
		excerpt := defaultExcerpt(content)

		assert.True(t, utf8.ValidString(excerpt))
		assert.True(t, strings.HasSuffix(excerpt, "..."))
		assert.Equal(t, excerptLength, utf8.RuneCountInString(strings.TrimSuffix(excerpt, "...")))
		assert.Contains(t, excerpt, "é")
	})

	t.Run("contenu accentué court repris tel quel", func(t *testing.T) {
		assert.Equal(t, "L'été à Liège", defaultExcerpt("L'été à Liège"))
	})
}
