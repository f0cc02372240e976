package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClubs(t *testing.T) {
	dir := t.TempDir()
	content := "Popis nominacija\n" +
		"Sezona 2025\n" +
		"IME,PREZIME,KLUB,GODIŠTE\n" +
		"Ivan,Horvat,KSD Bjelovar,1990\n" +
		"Ana,Anić,PK Split,2001\n" +
		"IME,PREZIME,KLUB,GODIŠTE\n" + // repeated header block
		"Marko,Marić,PK Zagreb,1995\n" +
		",Bezimena,PK Zagreb,1999\n" // missing first name, dropped
	path := writeFile(t, dir, "klubovi.csv", content)

	lookup, err := LoadClubs(path)
	require.NoError(t, err)

	assert.Equal(t, 3, lookup.Size())
	assert.Equal(t, "KSD Bjelovar", lookup.Club("Ivan Horvat"))
	assert.Equal(t, "PK Split", lookup.Club("Ana Anić"))
	assert.Equal(t, "PK Zagreb", lookup.Club("Marko Marić"))
	assert.Equal(t, 1990, lookup.BirthYear("Ivan Horvat"))
	assert.Equal(t, "", lookup.Club("Nepoznat Netko"))
	assert.Equal(t, 0, lookup.BirthYear("Nepoznat Netko"))
}

func TestLoadClubs_NameNormalization(t *testing.T) {
	dir := t.TempDir()
	content := "naslov\nSezona 2025\nIME,PREZIME,KLUB\nIvan,Horvat,KSD Bjelovar\n"
	path := writeFile(t, dir, "klubovi.csv", content)

	lookup, err := LoadClubs(path)
	require.NoError(t, err)

	assert.Equal(t, "KSD Bjelovar", lookup.Club("  ivan   HORVAT "))
	assert.Equal(t, "KSD Bjelovar", lookup.Club("IVAN HORVAT"))
}

func TestLoadClubs_SemicolonDelimiter(t *testing.T) {
	dir := t.TempDir()
	content := "naslov\nSezona 2025\nIME;PREZIME;KLUB;GODISTE\nIvan;Horvat;KSD Bjelovar;1990\n"
	path := writeFile(t, dir, "klubovi.csv", content)

	lookup, err := LoadClubs(path)
	require.NoError(t, err)
	assert.Equal(t, "KSD Bjelovar", lookup.Club("Ivan Horvat"))
	assert.Equal(t, 1990, lookup.BirthYear("Ivan Horvat"))
}

func TestLoadClubs_FractionalBirthYear(t *testing.T) {
	// Spreadsheets export years as floats more often than anyone would like.
	dir := t.TempDir()
	content := "naslov\nSezona 2025\nIME,PREZIME,KLUB,GODIŠTE\nIvan,Horvat,KSD Bjelovar,1990.0\n"
	path := writeFile(t, dir, "klubovi.csv", content)

	lookup, err := LoadClubs(path)
	require.NoError(t, err)
	assert.Equal(t, 1990, lookup.BirthYear("Ivan Horvat"))
}

func TestLoadClubs_MissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "klubovi.csv", "naslov\nSezona 2025\nA,B,C\n1,2,3\n")

	_, err := LoadClubs(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IME, PREZIME, KLUB")
}

func TestLoadClubs_FileMissing(t *testing.T) {
	_, err := LoadClubs("/nonexistent/klubovi.csv")
	require.Error(t, err)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ivan horvat", NormalizeName("  Ivan   Horvat "))
	assert.Equal(t, "ana anić", NormalizeName("ANA ANIĆ"))
	assert.Equal(t, "", NormalizeName("   "))
}
