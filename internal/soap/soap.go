// Package soap sorts transcript sentences into the four sections of a SOAP
// clinical note by case-insensitive keyword matching.
package soap

import "strings"

// NotApplicable is the section value when no sentence matched.
const NotApplicable = "N/A"

// Note holds the four SOAP sections.
type Note struct {
	Subjective string
	Objective  string
	Assessment string
	Plan       string
}

// KeywordSets holds one lowercase keyword list per section.
type KeywordSets struct {
	Subjective []string
	Objective  []string
	Assessment []string
	Plan       []string
}

// DefaultKeywords returns the built-in keyword sets.
func DefaultKeywords() KeywordSets {
	return KeywordSets{
		Subjective: []string{"i feel", "pain", "complain", "issue", "problem", "symptom", "experience"},
		Objective:  []string{"observed", "examined", "measured", "vital", "temperature", "blood pressure", "heart rate", "inspection", "test"},
		Assessment: []string{"diagnosis", "assess", "impression", "finding", "conclude", "likely"},
		Plan:       []string{"recommend", "advise", "plan", "follow-up", "should", "next step", "treatment", "prescribe"},
	}
}

// Merge returns s with every empty section replaced by the default list.
// Keywords are lowercased and blank entries dropped.
func (s KeywordSets) Merge() KeywordSets {
	def := DefaultKeywords()
	return KeywordSets{
		Subjective: normalize(s.Subjective, def.Subjective),
		Objective:  normalize(s.Objective, def.Objective),
		Assessment: normalize(s.Assessment, def.Assessment),
		Plan:       normalize(s.Plan, def.Plan),
	}
}

func normalize(kws, fallback []string) []string {
	out := make([]string, 0, len(kws))
	for _, k := range kws {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// Classifier assigns sentences to sections using its keyword sets.
type Classifier struct {
	sets KeywordSets
}

// NewClassifier builds a Classifier; empty sections in sets use the defaults.
func NewClassifier(sets KeywordSets) *Classifier {
	return &Classifier{sets: sets.Merge()}
}

// Classify runs the default keyword sets over sentences.
func Classify(sentences []string) Note {
	return NewClassifier(KeywordSets{}).Classify(sentences)
}

// Classify returns one section per category. A sentence lands in every
// section whose keywords it contains, and each section keeps transcript order.
func (c *Classifier) Classify(sentences []string) Note {
	lowered := make([]string, len(sentences))
	for i, s := range sentences {
		lowered[i] = strings.ToLower(s)
	}

	return Note{
		Subjective: extract(sentences, lowered, c.sets.Subjective),
		Objective:  extract(sentences, lowered, c.sets.Objective),
		Assessment: extract(sentences, lowered, c.sets.Assessment),
		Plan:       extract(sentences, lowered, c.sets.Plan),
	}
}

func extract(sentences, lowered, keywords []string) string {
	var picked []string
	for i, s := range sentences {
		if containsAny(lowered[i], keywords) {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		return NotApplicable
	}
	return strings.Join(picked, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
