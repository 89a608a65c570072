// Package russiannouns models Russian noun lemmas: the dictionary form of a
// noun together with its gender, pluralia tantum and indeclinable status,
// animacy and transport markers.
//
// Lemmas are immutable and built with a LemmaBuilder, which checks the
// gender only when Build is called. Text is lowercased with LowerCase, a
// byte-level transform for Cyrillic that needs no locale support.
//
// Only UTF-8 text is supported.
package russiannouns

// Version of the module.
const Version = "v0.1.0"
