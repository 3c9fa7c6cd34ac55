package roles

import "strings"

// Defaults holds the best-guess header for each role. An empty string means
// no header matched. Defaults only pre-populate a confirmation step; they
// never replace a user-confirmed mapping.
type Defaults struct {
	Class    string
	Lesson   string
	Item     string
	Quantity string
	Size     string
	Unit     string
}

// GuessColumn returns the first header whose normalized form contains one
// of the candidate phrases as a substring. Phrases are tried in priority
// order, and for each phrase headers are scanned in their given order, so
// phrase priority dominates header position. The second return value is
// false when nothing matched.
func GuessColumn(headers []string, phrases []string) (string, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = Normalize(h)
	}
	for _, phrase := range phrases {
		for i, n := range normalized {
			if strings.Contains(n, phrase) {
				return headers[i], true
			}
		}
	}
	return "", false
}

// InferDefaults proposes a header for each role using the built-in
// phrase table.
func InferDefaults(headers []string) Defaults {
	return InferDefaultsWith(headers, DefaultPhrases())
}

// InferDefaultsWith proposes a header for each role using the given
// phrase table.
func InferDefaultsWith(headers []string, table PhraseTable) Defaults {
	guess := func(role Role) string {
		h, _ := GuessColumn(headers, table[role])
		return h
	}
	return Defaults{
		Class:    guess(RoleClass),
		Lesson:   guess(RoleLesson),
		Item:     guess(RoleItem),
		Quantity: guess(RoleQuantity),
		Size:     guess(RoleSize),
		Unit:     guess(RoleUnit),
	}
}
