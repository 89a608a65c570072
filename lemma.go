package russiannouns

import (
	"strconv"
	"strings"
)

// Lemma is the dictionary form of a Russian noun together with its
// grammatical classification. A Lemma is immutable and is created only by
// LemmaBuilder.Build; the zero value is not a valid lemma.
type Lemma struct {
	// text is the word as given to the builder.
	text string
	// lower is LowerCase(text), computed when text was last set.
	lower string
	// gender is GENDERLESS if and only if pluraliaTantum is set.
	gender Gender

	pluraliaTantum bool
	indeclinable   bool

	animate bool
	surname bool
	name    bool

	transport  bool
	watercraft bool
}

// Text returns the word in its original case.
func (l Lemma) Text() string {
	return l.text
}

// Lower returns the lowercased word.
func (l Lemma) Lower() string {
	return l.lower
}

// Gender returns the grammatical gender, GENDERLESS for pluralia tantum.
func (l Lemma) Gender() Gender {
	return l.gender
}

// IsPluraliaTantum is true for nouns used only in the plural, e.g. "ножницы".
func (l Lemma) IsPluraliaTantum() bool {
	return l.pluraliaTantum
}

// IsIndeclinable is true for nouns with one form for all cases.
func (l Lemma) IsIndeclinable() bool {
	return l.indeclinable
}

// IsAnimate is true for animate nouns, surnames and given names.
func (l Lemma) IsAnimate() bool {
	return l.animate || l.surname || l.name
}

// IsASurname is true for family names.
func (l Lemma) IsASurname() bool {
	return l.surname
}

// IsAName is true for given names.
func (l Lemma) IsAName() bool {
	return l.name
}

// IsATransport is true for vehicles, watercraft included.
func (l Lemma) IsATransport() bool {
	return l.transport || l.watercraft
}

// IsAWatercraft is true for ships and boats.
func (l Lemma) IsAWatercraft() bool {
	return l.watercraft
}

// Copy returns a builder holding every field of l, for deriving a lemma
// that differs in a few fields.
func (l Lemma) Copy() *LemmaBuilder {
	return BuilderFrom(l)
}

// String returns a debug dump of all fields, e.g.
//
//	{ "шутка", F, false, false, false, false, false, false, false }
//
// Flags are the stored values, not the aggregated predicates.
func (l Lemma) String() string {
	var sb strings.Builder
	sb.WriteString(`{ "`)
	sb.WriteString(l.text)
	sb.WriteString(`", `)
	sb.WriteString(l.gender.String())
	for _, b := range []bool{
		l.pluraliaTantum, l.indeclinable,
		l.animate, l.surname, l.name,
		l.transport, l.watercraft,
	} {
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatBool(b))
	}
	sb.WriteString(" }")
	return sb.String()
}
