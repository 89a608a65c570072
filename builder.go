package russiannouns

// LemmaBuilder collects the fields of a Lemma. Nothing is validated until
// Build. A builder is meant to be used by one goroutine, usually within a
// single expression:
//
//	l, err := NewLemmaBuilder("шутка").WithGender(FEMININE).Build()
type LemmaBuilder struct {
	lemma Lemma
}

// NewLemmaBuilder starts a lemma for text with all flags unset and no gender.
func NewLemmaBuilder(text string) *LemmaBuilder {
	return &LemmaBuilder{
		lemma: Lemma{
			text:   text,
			lower:  LowerCase(text),
			gender: GENDERLESS,
		},
	}
}

// BuilderFrom starts a builder holding every field of l, including its
// already lowercased text.
func BuilderFrom(l Lemma) *LemmaBuilder {
	return &LemmaBuilder{lemma: l}
}

// WithText replaces the text and recomputes its lowercase form.
func (b *LemmaBuilder) WithText(text string) *LemmaBuilder {
	b.lemma.text = text
	b.lemma.lower = LowerCase(text)
	return b
}

// WithGender sets the gender. It is ignored by Build for pluralia tantum.
func (b *LemmaBuilder) WithGender(g Gender) *LemmaBuilder {
	b.lemma.gender = g
	return b
}

// WithPluraliaTantum marks a plural-only noun, which Build makes GENDERLESS.
func (b *LemmaBuilder) WithPluraliaTantum(pt bool) *LemmaBuilder {
	b.lemma.pluraliaTantum = pt
	return b
}

// WithIndeclinable marks a noun with a single form for all cases, e.g. "кофе".
func (b *LemmaBuilder) WithIndeclinable(indeclinable bool) *LemmaBuilder {
	b.lemma.indeclinable = indeclinable
	return b
}

// WithAnimate marks a noun denoting a living being.
func (b *LemmaBuilder) WithAnimate(animate bool) *LemmaBuilder {
	b.lemma.animate = animate
	return b
}

// WithSurname marks a family name; surnames are also animate.
func (b *LemmaBuilder) WithSurname(surname bool) *LemmaBuilder {
	b.lemma.surname = surname
	return b
}

// WithName marks a given name; names are also animate.
func (b *LemmaBuilder) WithName(name bool) *LemmaBuilder {
	b.lemma.name = name
	return b
}

// WithTransport marks a vehicle.
func (b *LemmaBuilder) WithTransport(transport bool) *LemmaBuilder {
	b.lemma.transport = transport
	return b
}

// WithWatercraft marks a ship or boat; watercraft are also transport.
func (b *LemmaBuilder) WithWatercraft(watercraft bool) *LemmaBuilder {
	b.lemma.watercraft = watercraft
	return b
}

// Build returns the finished Lemma. Pluralia tantum always end up
// GENDERLESS, whatever gender was set. Any other lemma must have a gender,
// otherwise Build returns a *gn.Error with Code InvalidGenderError, see
// IsInvalidGender.
func (b *LemmaBuilder) Build() (Lemma, error) {
	g, err := checkedGender(b.lemma)
	if err != nil {
		return Lemma{}, err
	}
	l := b.lemma
	l.gender = g
	return l, nil
}

// MustBuild is like Build but panics if the lemma is invalid.
func (b *LemmaBuilder) MustBuild() Lemma {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func checkedGender(l Lemma) (Gender, error) {
	switch {
	case l.pluraliaTantum:
		return GENDERLESS, nil
	case l.gender == GENDERLESS:
		return GENDERLESS, InvalidGenderErr(l.text)
	default:
		return l.gender, nil
	}
}
