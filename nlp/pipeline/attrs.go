package pipeline

import (
	"strings"
	"unicode"

	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/lemmatizer"
	"github.com/oarkflow/rake/nlp/stopwords"
)

var numberWords = map[string]struct{}{
	"zero": {}, "one": {}, "two": {}, "three": {}, "four": {}, "five": {}, "six": {},
	"seven": {}, "eight": {}, "nine": {}, "ten": {}, "eleven": {}, "twelve": {},
	"thirteen": {}, "fourteen": {}, "fifteen": {}, "sixteen": {}, "seventeen": {},
	"eighteen": {}, "nineteen": {}, "twenty": {}, "thirty": {}, "forty": {},
	"fifty": {}, "sixty": {}, "seventy": {}, "eighty": {}, "ninety": {},
	"hundred": {}, "thousand": {}, "million": {}, "billion": {}, "trillion": {},
	"quadrillion": {}, "gajillion": {}, "bazillion": {},
}

// LikeNum reports whether text resembles a number: digits with optional
// thousands or decimal separators, a simple fraction, or an English number word.
func LikeNum(text string) bool {
	text = strings.TrimLeft(text, "+-±~")
	if text == "" {
		return false
	}
	if allDigits(strings.NewReplacer(",", "", ".", "").Replace(text)) {
		return true
	}
	if num, denom, ok := strings.Cut(text, "/"); ok && allDigits(num) && allDigits(denom) {
		return true
	}
	_, ok := numberWords[strings.ToLower(text)]
	return ok
}

// IsPunct reports whether every rune of text is Unicode punctuation.
func IsPunct(text string) bool {
	return all(text, unicode.IsPunct)
}

// IsSpace reports whether every rune of text is whitespace.
func IsSpace(text string) bool {
	return all(text, unicode.IsSpace)
}

// annotate fills the lexical flags shared by every pipeline.
func annotate(text, tag, label string) document.Token {
	return document.Token{
		Text:    text,
		Lemma:   lemmatizer.Lemma(text),
		Tag:     tag,
		Label:   label,
		IsStop:  stopwords.Contains(text),
		IsSpace: IsSpace(text),
		IsPunct: IsPunct(text),
		LikeNum: LikeNum(text),
	}
}

func allDigits(s string) bool {
	return all(s, unicode.IsDigit)
}

func all(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
