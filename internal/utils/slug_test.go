package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "mon-premier-article", Slugify("Mon Premier Article"))
	assert.Equal(t, "promo-50-sur-tout", Slugify("Promo -50% sur TOUT !!"))
	assert.Equal(t, "deja-en-minuscules", Slugify("deja-en-minuscules"))
	assert.Equal(t, "", Slugify("???"))
	assert.Equal(t, "a-b-c", Slugify("  a   b   c  "))
}

func TestUniqueSlug(t *testing.T) {
	// Aucune collision : le slug de base est conservé
	slug := UniqueSlug("mon-article", func(string) bool { return false })
	assert.Equal(t, "mon-article", slug)

	// Collisions sur la base et -1 : on sonde jusqu'au premier libre
	taken := map[string]bool{"mon-article": true, "mon-article-1": true}
	slug = UniqueSlug("mon-article", func(s string) bool { return taken[s] })
	assert.Equal(t, "mon-article-2", slug)
}
