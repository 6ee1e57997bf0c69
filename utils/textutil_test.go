package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBlock(t *testing.T) {
	text := "Header\nEmail Id: a@b.com\nSome Name\nMobile: 12345\nPAN: XYZ"

	block, found := findBlock(text, "Email Id:", []string{"Mobile:", "PAN:", "Folio No:"})
	assert.True(t, found)
	assert.Equal(t, " a@b.com\nSome Name\n", block)

	// Anchor lookup is case-insensitive.
	block, found = findBlock(text, "email id:", []string{"Mobile:"})
	assert.True(t, found)
	assert.Equal(t, " a@b.com\nSome Name\n", block)

	// No end anchor runs to end-of-text.
	block, found = findBlock(text, "PAN:", []string{"Folio No:"})
	assert.True(t, found)
	assert.Equal(t, " XYZ", block)

	_, found = findBlock(text, "Nominee 1:", []string{"Mobile:"})
	assert.False(t, found)
}

func TestParseAmount(t *testing.T) {
	amount := parseAmount("1,234.56")
	if assert.NotNil(t, amount) {
		assert.Equal(t, 1234.56, *amount)
	}

	amount = parseAmount(" 10,00,000.00 ")
	if assert.NotNil(t, amount) {
		assert.Equal(t, 1000000.00, *amount)
	}

	assert.Nil(t, parseAmount("abc"))
	assert.Nil(t, parseAmount(""))
	assert.Nil(t, parseAmount("12.34.56"))
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, looksLikeEmail("investor@example.com"))
	assert.True(t, looksLikeEmail("  first.last+tag@mail.co.in  "))
	assert.False(t, looksLikeEmail("Email Id: investor@example.com"))
	assert.False(t, looksLikeEmail("RAHUL SHARMA"))
	assert.False(t, looksLikeEmail("investor@localhost"))
}

func TestSplitLines(t *testing.T) {
	lines := splitLines("  a \n\n b\n\t\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
	assert.Nil(t, splitLines(""))
}
