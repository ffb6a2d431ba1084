package stemmer

import "github.com/kljensen/snowball/english"

// Stem reduces word to its Snowball (Porter2) English stem.
// Stop words are stemmed too so every token gets a key.
func Stem(word string) string {
	return english.Stem(word, true)
}
