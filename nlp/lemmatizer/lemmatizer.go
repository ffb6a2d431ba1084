package lemmatizer

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed lemma_dict.csv
var dict string

// Dict maps inflected lower-case forms to their base form.
var Dict map[string]string

func init() {
	Dict = make(map[string]string)
	scan := bufio.NewScanner(strings.NewReader(dict))
	for scan.Scan() {
		parts := strings.Split(scan.Text(), ",")
		if len(parts) == 2 {
			Dict[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
}

// Lemma returns the base form if present. Exact matches win over
// lower-cased ones; unknown tokens come back unchanged, so Lemma is
// idempotent on its own output.
func Lemma(token string) string {
	if l, ok := Dict[token]; ok {
		return l
	}
	if l, ok := Dict[strings.ToLower(token)]; ok {
		return l
	}
	return token
}
