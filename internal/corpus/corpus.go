package corpus

import (
	"fmt"
	"sort"

	"intentbench/internal/logging"
)

// Corpus is an ordered collection of test cases. The zero value is empty;
// use Builtin for the hand-authored dataset.
type Corpus struct {
	cases []TestCase
}

// Builtin returns the built-in dataset in its canonical bucket order.
func Builtin() *Corpus {
	c := &Corpus{}
	c.cases = append(c.cases, basicCases...)
	c.cases = append(c.cases, edgeCases...)
	c.cases = append(c.cases, typoCases...)
	c.cases = append(c.cases, slangCases...)
	c.cases = append(c.cases, multilingualCases...)
	c.cases = append(c.cases, contextualCases...)
	c.cases = append(c.cases, complexCases...)
	logging.CorpusDebug("Built-in corpus loaded: %d cases", len(c.cases))
	return c
}

// FromCases builds a corpus from an explicit case list, preserving order.
func FromCases(cases []TestCase) *Corpus {
	c := &Corpus{cases: make([]TestCase, len(cases))}
	copy(c.cases, cases)
	return c
}

// All returns every test case in deterministic enumeration order.
func (c *Corpus) All() []TestCase {
	out := make([]TestCase, len(c.cases))
	copy(out, c.cases)
	return out
}

// Len reports the number of cases.
func (c *Corpus) Len() int { return len(c.cases) }

// ByCategory returns the cases in the given category, preserving order.
// Unknown or unpopulated categories yield an empty slice, never an error.
func (c *Corpus) ByCategory(cat Category) []TestCase {
	var out []TestCase
	for _, tc := range c.cases {
		if tc.Category == cat {
			out = append(out, tc)
		}
	}
	return out
}

// ByIntent returns the cases whose expected intent matches, preserving order.
func (c *Corpus) ByIntent(intent Intent) []TestCase {
	var out []TestCase
	for _, tc := range c.cases {
		if tc.ExpectedIntent == intent {
			out = append(out, tc)
		}
	}
	return out
}

// Merge appends another corpus after this one's cases.
func (c *Corpus) Merge(other *Corpus) {
	if other == nil {
		return
	}
	c.cases = append(c.cases, other.cases...)
	logging.CorpusDebug("Corpus merged: now %d cases", len(c.cases))
}

// Validate fails fast on any case outside the agreed vocabularies.
// Run before evaluation begins; a bad corpus is a setup error, not a
// per-case failure.
func (c *Corpus) Validate() error {
	for i, tc := range c.cases {
		if err := tc.Validate(); err != nil {
			return fmt.Errorf("corpus integrity: case %d: %w", i, err)
		}
	}
	logging.CorpusDebug("Corpus validated: %d cases ok", len(c.cases))
	return nil
}

// Stats summarizes the dataset. MeanMinConfidence is only meaningful
// when HasMinConfidence is true; with no data it stays 0 and callers
// must print an explicit no-data marker instead of dividing by zero.
type Stats struct {
	Total             int
	PerCategory       map[Category]int
	PerIntent         map[Intent]int
	Languages         []string
	MeanMinConfidence float64
	HasMinConfidence  bool
}

// DatasetStats computes counts per category and intent, the distinct
// languages present, and the mean of all present minimum confidences.
func (c *Corpus) DatasetStats() Stats {
	s := Stats{
		Total:       len(c.cases),
		PerCategory: make(map[Category]int),
		PerIntent:   make(map[Intent]int),
	}

	langs := make(map[string]bool)
	sum := 0.0
	n := 0
	for _, tc := range c.cases {
		s.PerCategory[tc.Category]++
		s.PerIntent[tc.ExpectedIntent]++
		if tc.Language != "" {
			langs[tc.Language] = true
		}
		if tc.MinConfidence != nil {
			sum += *tc.MinConfidence
			n++
		}
	}

	for lang := range langs {
		s.Languages = append(s.Languages, lang)
	}
	sort.Strings(s.Languages)

	if n > 0 {
		s.MeanMinConfidence = sum / float64(n)
		s.HasMinConfidence = true
	}
	return s
}
