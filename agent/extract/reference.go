package extract

import (
	"regexp"
	"strings"
)

// vaguePronouns are the demonstrative words a buyer uses to point back at
// whatever was last shown.
var vaguePronouns = []string{"هي", "ده", "دي", "العقار ده", "العرض ده"}

const negativePhrases = `مش|ما عجبني|ما عجباني|ما عجبها|ما حبيتها`

// referencePatterns: pronoun, anything, then a negative-sentiment phrase.
var referencePatterns = compileReferencePatterns()

func compileReferencePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(vaguePronouns))
	for _, pronoun := range vaguePronouns {
		patterns = append(patterns, regexp.MustCompile(regexp.QuoteMeta(pronoun)+`.*(`+negativePhrases+`)`))
	}
	return patterns
}

// RefersToPrevious reports whether the message is a vague complaint about
// a previously shown property ("it doesn't please me" and friends). The
// caller binds the refers_to slot: to the last mentioned property when one
// exists, otherwise to the unresolved sentinel.
func RefersToPrevious(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range referencePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
