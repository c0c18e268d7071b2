package fields

import "strings"

// titleize converts a declared name into a display title: underscores become
// spaces and each word is title-cased ("simple_field" -> "Simple Field").
func titleize(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
