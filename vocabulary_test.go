package russiannouns

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vocabDir = "testdata/vocabulary"

func TestParseGrammemes(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	l, err := ParseGrammemes("ножницы", []string{"Pltm", "inan"})
	require.NoError(err)
	assert.Equal(GENDERLESS, l.Gender())
	assert.True(l.IsPluraliaTantum())
	assert.False(l.IsAnimate())

	l, err = ParseGrammemes("врач", []string{"masc", "anim"})
	require.NoError(err)
	assert.Equal(MASCULINE, l.Gender())
	assert.True(l.IsAnimate())

	l, err = ParseGrammemes("Анна", []string{"femn", "Name", "anim"})
	require.NoError(err)
	assert.Equal(FEMININE, l.Gender())
	assert.True(l.IsAName())
	assert.Equal("анна", l.Lower())

	l, err = ParseGrammemes("кофе", []string{"Fixd", "masc", "Geox"})
	require.NoError(err)
	assert.True(l.IsIndeclinable())

	_, err = ParseGrammemes("нечто", []string{"Fixd", "inan"})
	var gnErr *gn.Error
	require.True(errors.As(err, &gnErr))
	assert.ErrorIs(gnErr.Err, ErrInvalidGender)
}

func TestLoadVocabulary(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	v, err := LoadVocabulary(strings.NewReader(`{
		"ЁЖ": {"g": [["anim", "masc"]]},
		"мгла": {"g": [["femn", "inan"]]}
	}`))
	require.NoError(err)
	assert.Equal(2, v.Len())
	// byte order: ё (0xD1 0x91) sorts after м (0xD0 0xBC)
	assert.Equal([]string{"мгла", "ёж"}, v.Words())

	ls := v.Lookup("Ёж")
	require.Len(ls, 1)
	assert.Equal("ЁЖ", ls[0].Text())
	assert.True(ls[0].IsAnimate())

	assert.Empty(v.Lookup("буря"))

	_, err = LoadVocabulary(strings.NewReader(`{"мгла": `))
	var gnErr *gn.Error
	require.True(errors.As(err, &gnErr))
	assert.Equal(VocabularyDecodeError, gnErr.Code)
}

func TestLookupReturnsCopy(t *testing.T) {
	v, err := LoadVocabularyDir(vocabDir)
	require.NoError(t, err)

	ls := v.Lookup("стекло")
	require.Len(t, ls, 2)
	ls[0] = NewLemmaBuilder("чужое").WithGender(NEUTER).MustBuild()
	_ = append(ls[:1], ls[0])

	again := v.Lookup("стекло")
	require.Len(t, again, 2)
	assert.Equal(t, "стекло", again[0].Text())
	assert.Equal(t, "стекло", again[1].Text())
}

func TestLoadVocabularyDirPatternChars(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "dict[1]*")
	require.NoError(os.MkdirAll(filepath.Join(dir, "nouns_sub.json"), 0o755))

	src, err := os.ReadFile(filepath.Join(vocabDir, "nouns_с.json"))
	require.NoError(err)
	require.NoError(os.WriteFile(filepath.Join(dir, "nouns_с.json"), src, 0o644))
	require.NoError(os.WriteFile(filepath.Join(dir, "other.json"), []byte("not json"), 0o644))

	v, err := LoadVocabularyDir(dir)
	require.NoError(err)
	assert.Equal([]string{"сирота", "соколов", "стекло"}, v.Words())
}

func TestLoadVocabularyDir(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	v, err := LoadVocabularyDir(vocabDir)
	require.NoError(err)

	// нечто has no gender and is skipped
	assert.Equal(5, v.Len())
	assert.Empty(v.Lookup("нечто"))

	ls := v.Lookup("СИРОТА")
	require.Len(ls, 1)
	assert.Equal(COMMON, ls[0].Gender())

	ls = v.Lookup("соколов")
	require.Len(ls, 1)
	assert.True(ls[0].IsASurname())
	assert.True(ls[0].IsAnimate())
	assert.Equal("Соколов", ls[0].Text())

	// homonyms are kept in file order
	assert.Len(v.Lookup("стекло"), 2)

	_, err = LoadVocabularyDir(filepath.Join(vocabDir, "missing"))
	var gnErr *gn.Error
	require.True(errors.As(err, &gnErr))
	assert.Equal(VocabularyReadError, gnErr.Code)
}
