package spell

import (
	_ "embed"
	"strings"
)

//go:embed words.txt
var baseWordList string

// BaseWords returns the built-in lexicon: the common English and warehouse
// vocabulary that appears in dictionary descriptions. Deployments extend it
// with their glossary and the vocabulary store's source terms.
func BaseWords() []string {
	return strings.Fields(baseWordList)
}
