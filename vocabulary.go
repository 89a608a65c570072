package russiannouns

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
)

// Grammemes understood by ParseGrammemes, as used in OpenCorpora.
const (
	GrammemeMasculine      = "masc"
	GrammemeFeminine       = "femn"
	GrammemeNeuter         = "neut"
	GrammemeCommon         = "ms-f"
	GrammemePluraliaTantum = "Pltm"
	GrammemeIndeclinable   = "Fixd"
	GrammemeAnimate        = "anim"
	GrammemeSurname        = "Surn"
	GrammemeName           = "Name"
)

// ParseGrammemes builds a Lemma for text from a set of OpenCorpora
// grammemes. Grammemes that carry no lemma-level information ("inan",
// "Sgtm", "Geox" and so on) are ignored.
func ParseGrammemes(text string, tags []string) (Lemma, error) {
	b := NewLemmaBuilder(text)
	for _, tag := range tags {
		switch tag {
		case GrammemeMasculine:
			b.WithGender(MASCULINE)
		case GrammemeFeminine:
			b.WithGender(FEMININE)
		case GrammemeNeuter:
			b.WithGender(NEUTER)
		case GrammemeCommon:
			b.WithGender(COMMON)
		case GrammemePluraliaTantum:
			b.WithPluraliaTantum(true)
		case GrammemeIndeclinable:
			b.WithIndeclinable(true)
		case GrammemeAnimate:
			b.WithAnimate(true)
		case GrammemeSurname:
			b.WithSurname(true)
		case GrammemeName:
			b.WithName(true)
		}
	}
	return b.Build()
}

// Vocabulary is a read-only set of lemmas keyed by their lowercase text.
// It is safe for concurrent use once loaded.
type Vocabulary struct {
	// lemmas maps LowerCase(text) to every lemma with that text,
	// homonyms in file order.
	lemmas map[string][]Lemma
}

// vocabularyEntry is one word of a nouns_<letter>.json file.
type vocabularyEntry struct {
	// G holds one grammeme set per homonym.
	G [][]string `json:"g"`
}

// vocabularyPattern matches dictionary file names inside a directory.
const vocabularyPattern = "nouns_*.json"

func newVocabulary() *Vocabulary {
	return &Vocabulary{lemmas: make(map[string][]Lemma)}
}

// LoadVocabulary reads one dictionary in the format
//
//	{ "ножницы": { "g": [["Pltm", "inan"]] }, ... }
//
// Grammeme sets that do not make a valid lemma are skipped.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	v := newVocabulary()
	if err := v.read(r); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadVocabularyDir loads every nouns_*.json file found in dir.
func LoadVocabularyDir(dir string) (*Vocabulary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, VocabularyReadErr(dir, err)
	}
	// ReadDir returns entries sorted by name
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(vocabularyPattern, e.Name()); ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	v := newVocabulary()
	for _, path := range paths {
		if err := v.readFile(path); err != nil {
			return nil, err
		}
	}
	slog.Debug("vocabulary loaded", "dir", dir, "files", len(paths), "words", v.Len())
	return v, nil
}

func (v *Vocabulary) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return VocabularyReadErr(path, err)
	}
	defer f.Close()
	return v.read(f)
}

func (v *Vocabulary) read(r io.Reader) error {
	var entries map[string]vocabularyEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return VocabularyDecodeErr(err)
	}

	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		for _, tags := range entries[w].G {
			l, err := ParseGrammemes(w, tags)
			if err != nil {
				slog.Debug("skipping lemma", "word", w, "grammemes", tags, "error", err)
				continue
			}
			v.add(l)
		}
	}
	return nil
}

func (v *Vocabulary) add(l Lemma) {
	v.lemmas[l.Lower()] = append(v.lemmas[l.Lower()], l)
}

// Lookup returns all lemmas spelled word, ignoring case. The result is a
// copy and may be modified by the caller.
func (v *Vocabulary) Lookup(word string) []Lemma {
	return slices.Clone(v.lemmas[LowerCase(word)])
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return len(v.lemmas)
}

// Words returns all lowercase words in sorted order.
func (v *Vocabulary) Words() []string {
	res := make([]string, 0, len(v.lemmas))
	for w := range v.lemmas {
		res = append(res, w)
	}
	sort.Strings(res)
	return res
}
