package russiannouns

// UTF-8 bytes of the basic Cyrillic block (U+0400–U+04FF) used by the folder.
// Every letter handled here is encoded as a lead byte (0xD0 or 0xD1)
// followed by one continuation byte.
const (
	leadD0 byte = 0xD0 // А–П, Р–Я, Ё and а–п
	leadD1 byte = 0xD1 // р–я, ё

	upperAFirst byte = 0x90 // А
	upperALast  byte = 0x9F // П
	upperRFirst byte = 0xA0 // Р
	upperRLast  byte = 0xAF // Я
	upperYo     byte = 0x81 // Ё
	lowerYo     byte = 0x91 // ё

	caseShift byte = 0x20
)

// LowerCase returns s with every uppercase Russian letter replaced by its
// lowercase form. All other bytes are copied as is, so the result has the
// same byte length as s. No locale or Unicode case tables are consulted.
//
// Input is expected to be valid UTF-8; invalid sequences are passed through
// but this is not guaranteed.
func LowerCase(s string) string {
	if s == "" {
		return s
	}
	return string(LowerCaseBytes([]byte(s)))
}

// LowerCaseBytes is the byte-slice form of LowerCase. It never modifies b
// and returns a freshly allocated slice of len(b).
func LowerCaseBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	r := make([]byte, len(b))
	copy(r, b)

	// index 0 has no lead byte before it
	for i := 1; i < len(r); i++ {
		if r[i-1] != leadD0 {
			continue
		}
		c := r[i]
		switch {
		case upperAFirst <= c && c <= upperALast:
			r[i] = c + caseShift
		case upperRFirst <= c && c <= upperRLast:
			r[i-1] = leadD1
			r[i] = c - caseShift
		case c == upperYo:
			// ё is not at a fixed offset from Ё
			r[i-1] = leadD1
			r[i] = lowerYo
		}
	}
	return r
}
