package russiannouns

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Lemma construction errors
	InvalidGenderError
	UnknownGenderError

	// Vocabulary errors
	VocabularyReadError
	VocabularyDecodeError
)

// ErrInvalidGender is wrapped in the Err field of the *gn.Error that Build
// returns. gn.Error does not unwrap, so errors.Is on the returned error itself
// is false; use IsInvalidGender, or errors.As and compare Code with
// InvalidGenderError.
var ErrInvalidGender = errors.New("a grammatical gender required")

// IsInvalidGender reports whether err is the error Build returns for a lemma
// without a gender.
func IsInvalidGender(err error) bool {
	var gnErr *gn.Error
	return errors.As(err, &gnErr) && gnErr.Code == InvalidGenderError
}

// InvalidGenderErr reports a lemma that is neither pluralia tantum nor
// carries a gender.
func InvalidGenderErr(text string) error {
	msg := "Lemma <em>%s</em> requires a grammatical gender"
	vars := []any{text}
	return &gn.Error{
		Code: InvalidGenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %q: %w", caller(), text, ErrInvalidGender),
	}
}

func UnknownGenderErr(s string) error {
	msg := "Unknown grammatical gender <em>%s</em>"
	vars := []any{s}
	return &gn.Error{
		Code: UnknownGenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown gender %q", caller(), s),
	}
}

func VocabularyReadErr(path string, err error) error {
	msg := "Cannot read vocabulary <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: VocabularyReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", caller(), path, err),
	}
}

func VocabularyDecodeErr(err error) error {
	msg := "Cannot decode vocabulary"
	return &gn.Error{
		Code: VocabularyDecodeError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot decode vocabulary: %w", caller(), err),
	}
}

// caller names the function that called the error constructor.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
