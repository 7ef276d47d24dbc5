package soap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		want      Note
	}{
		{
			name: "one sentence per section",
			sentences: []string{
				"I feel a sharp pain.",
				"Temperature measured at 38.5.",
				"Diagnosis likely flu.",
				"Recommend rest and follow-up in a week.",
			},
			want: Note{
				Subjective: "I feel a sharp pain.",
				Objective:  "Temperature measured at 38.5.",
				Assessment: "Diagnosis likely flu.",
				Plan:       "Recommend rest and follow-up in a week.",
			},
		},
		{
			name:      "empty input",
			sentences: nil,
			want:      Note{NotApplicable, NotApplicable, NotApplicable, NotApplicable},
		},
		{
			name:      "case insensitive",
			sentences: []string{"PAIN here"},
			want:      Note{"PAIN here", NotApplicable, NotApplicable, NotApplicable},
		},
		{
			name:      "substring not whole word",
			sentences: []string{"The card was reissued."},
			want:      Note{"The card was reissued.", NotApplicable, NotApplicable, NotApplicable},
		},
		{
			name:      "negation still matches",
			sentences: []string{"No pain at all."},
			want:      Note{"No pain at all.", NotApplicable, NotApplicable, NotApplicable},
		},
		{
			name: "sentence in two sections",
			sentences: []string{
				"The pain test was positive.",
				"Nothing else.",
			},
			want: Note{
				Subjective: "The pain test was positive.",
				Objective:  "The pain test was positive.",
				Assessment: NotApplicable,
				Plan:       NotApplicable,
			},
		},
		{
			name: "order preserved when joining",
			sentences: []string{
				"Patient has a problem sleeping.",
				"Heart rate 90.",
				"Symptoms began Monday.",
			},
			want: Note{
				Subjective: "Patient has a problem sleeping. Symptoms began Monday.",
				Objective:  "Heart rate 90.",
				Assessment: NotApplicable,
				Plan:       NotApplicable,
			},
		},
		{
			name:      "non-ascii text",
			sentences: []string{"Überweisung geplant, die Schmerzen sind stark.", "患者は痛みを訴えた"},
			want:      Note{NotApplicable, NotApplicable, NotApplicable, "Überweisung geplant, die Schmerzen sind stark."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.sentences)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Each section is N/A or the space-joined in-order subsequence of matching sentences.
func TestClassifySectionsAreOrderedSubsequences(t *testing.T) {
	sentences := []string{
		"I feel dizzy when I stand.",
		"Blood pressure measured at 150 over 95.",
		"My impression is orthostatic hypotension.",
		"We should adjust the treatment plan.",
		"Thanks for coming in.",
		"Was the test painful?",
	}
	note := Classify(sentences)

	for name, section := range map[string]string{
		"subjective": note.Subjective,
		"objective":  note.Objective,
		"assessment": note.Assessment,
		"plan":       note.Plan,
	} {
		if section == NotApplicable {
			continue
		}
		rest := section
		for _, s := range sentences {
			if strings.HasPrefix(rest, s) {
				rest = strings.TrimPrefix(strings.TrimPrefix(rest, s), " ")
			}
		}
		if rest != "" {
			t.Errorf("%s section %q is not an ordered join of input sentences (left %q)", name, section, rest)
		}
	}

	if strings.Contains(note.Subjective, "Thanks") || strings.Contains(note.Plan, "Thanks") {
		t.Errorf("unmatched sentence leaked into a section: %+v", note)
	}
}

func TestClassifierCustomKeywords(t *testing.T) {
	c := NewClassifier(KeywordSets{
		Plan: []string{"  REFER ", ""},
	})

	got := c.Classify([]string{"Refer to cardiology.", "Recommend rest."})
	if got.Plan != "Refer to cardiology." {
		t.Errorf("Plan = %q, want only the custom keyword match", got.Plan)
	}
	if got.Subjective != NotApplicable {
		t.Errorf("Subjective = %q, want default set applied", got.Subjective)
	}
}

func TestMergeFallsBackToDefaults(t *testing.T) {
	got := KeywordSets{Objective: []string{" ", ""}}.Merge()
	if diff := cmp.Diff(DefaultKeywords(), got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}
