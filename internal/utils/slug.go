package utils

import (
	"fmt"
	"strings"
)

// Slugify dérive un slug URL-safe d'un titre : minuscules, toute séquence
// non alphanumérique remplacée par un tiret, tirets de bord supprimés.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // évite un tiret en tête

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// UniqueSlug désambiguïse un slug par suffixe numérique séquentiel tant que
// exists en signale une collision ("mon-titre", "mon-titre-1", "mon-titre-2", ...).
func UniqueSlug(base string, exists func(string) bool) string {
	slug := base
	counter := 1
	for exists(slug) {
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
	return slug
}
