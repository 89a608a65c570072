package russiannouns

import "strings"

// Gender is the grammatical gender of a noun. Its value is the one-letter
// code used in debug dumps.
type Gender rune

const (
	GENDERLESS Gender = 'G'
	FEMININE   Gender = 'F'
	MASCULINE  Gender = 'M'
	NEUTER     Gender = 'N'
	// COMMON is the "общий род" of words like "сирота" that agree
	// as either masculine or feminine.
	COMMON Gender = 'C'
)

// Genders lists the valid genders, GENDERLESS first.
var Genders = []Gender{GENDERLESS, FEMININE, MASCULINE, NEUTER, COMMON}

var genderNames = map[Gender]string{
	GENDERLESS: "GENDERLESS",
	FEMININE:   "FEMININE",
	MASCULINE:  "MASCULINE",
	NEUTER:     "NEUTER",
	COMMON:     "COMMON",
}

var genderDescriptions = map[Gender]string{
	GENDERLESS: "без рода",
	FEMININE:   "женский",
	MASCULINE:  "мужской",
	NEUTER:     "средний",
	COMMON:     "общий",
}

// String returns the one-letter code of g.
func (g Gender) String() string {
	return string(rune(g))
}

// Name returns the constant name of g, e.g. "FEMININE", or "" if g is not a
// known gender.
func (g Gender) Name() string {
	return genderNames[g]
}

// Description returns the Russian name of g, e.g. "женский".
func (g Gender) Description() string {
	return genderDescriptions[g]
}

// Valid reports whether g is one of the declared genders.
func (g Gender) Valid() bool {
	_, ok := genderNames[g]
	return ok
}

// ParseGender accepts a one-letter code ("F"), a constant name in any case
// ("feminine") or a Russian name ("женский").
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		g := Gender(strings.ToUpper(s)[0])
		if g.Valid() {
			return g, nil
		}
	}
	up := strings.ToUpper(s)
	for g, name := range genderNames {
		if name == up {
			return g, nil
		}
	}
	low := LowerCase(s)
	for g, desc := range genderDescriptions {
		if desc == low {
			return g, nil
		}
	}
	return GENDERLESS, UnknownGenderErr(s)
}
