package stopwords

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var list string

// Set holds the lower-cased English stop words.
var Set map[string]struct{}

func init() {
	Set = make(map[string]struct{})
	scan := bufio.NewScanner(strings.NewReader(list))
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w != "" && !strings.HasPrefix(w, "#") {
			Set[w] = struct{}{}
		}
	}
}

// Contains reports whether word is a stop word, ignoring case.
func Contains(word string) bool {
	_, ok := Set[strings.ToLower(word)]
	return ok
}
