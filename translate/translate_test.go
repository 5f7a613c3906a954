package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(Fallback)

	assert.Equal("Invalid register", From("Invalid register"))
	assert.Equal("limit: 256 bytes", From("limit: %d bytes", 256))
}

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.German)
	defer SetLanguage(Fallback)

	// No catalog entries exist, so the key passes through untranslated.
	assert.Equal("Invalid instruction mnemonic", From("Invalid instruction mnemonic"))
}
