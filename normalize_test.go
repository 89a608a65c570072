package russiannouns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"Hello123!", "Hello123!"},
		{"шутка", "шутка"},
		{"АБВГД ЕЁЖЗИ", "абвгд еёжзи"},
		{"ЙКЛМН ОПРСТ УФХЦЧ ШЩЪЫЬ ЭЮЯ", "йклмн опрст уфхцч шщъыь эюя"},
		{"пРиВеТ!", "привет!"},
		{"ЁЛКА", "ёлка"},
		{"Ёж", "ёж"},
		{"Москва-River", "москва-River"},
		{"монтЁр", "монтёр"},
		// outside the 0xD0/0xD1 lead bytes
		{"ÄÖÜ €", "ÄÖÜ €"},
		// D0 81 is Ё only after a lead byte
		{"\x81", "\x81"},
	}
	for _, tt := range tests {
		got := LowerCase(tt.in)
		if got != tt.want {
			t.Errorf("LowerCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerCaseLetters(t *testing.T) {
	assert := assert.New(t)
	upper := "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"
	lower := "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"
	assert.Equal(lower, LowerCase(upper))
	assert.Equal(strings.ToLower(upper), LowerCase(upper))

	// Е goes through the lead byte switch, Ё through its own rule
	assert.Equal([]byte{0xD0, 0xB5}, LowerCaseBytes([]byte("Е")))
	assert.Equal([]byte{0xD1, 0x91}, LowerCaseBytes([]byte("Ё")))
	assert.Equal([]byte{0xD1, 0x80}, LowerCaseBytes([]byte("Р")))
	assert.Equal([]byte{0xD0, 0xB0}, LowerCaseBytes([]byte("А")))
}

func TestLowerCaseIdempotent(t *testing.T) {
	assert := assert.New(t)
	for _, s := range []string{
		"гидразинокарбонилметилбромфенилдигидробенздиазепин",
		"АРХИ-СУПЕР-МЕГА-ГИПЕР-НАНО-УЛЬТРА-экстра-ПРОТО-АВТОМОТОВЕЛОФОТОТЕЛЕРАДИОМОНТЁР",
		"Mixed Текст 42",
	} {
		once := LowerCase(s)
		assert.Equal(once, LowerCase(once), s)
		assert.Len(once, len(s), s)
	}
}

func TestLowerCaseBytes(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(LowerCaseBytes(nil))
	empty := LowerCaseBytes([]byte{})
	assert.NotNil(empty)
	assert.Empty(empty)

	// single byte input must not look before the buffer
	assert.Equal([]byte{0xA0}, LowerCaseBytes([]byte{0xA0}))
	assert.Equal([]byte{0xD0}, LowerCaseBytes([]byte{0xD0}))

	in := []byte("ДОМ")
	orig := append([]byte(nil), in...)
	out := LowerCaseBytes(in)
	assert.Equal([]byte("дом"), out)
	assert.Equal(orig, in, "input must not be modified")
}
