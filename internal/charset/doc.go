// Package charset infers the character encoding of uploaded exports and
// decodes them to UTF-8.
//
// Detection runs an ICU-style statistical detector over a bounded prefix of
// the input and resolves the reported charset name against the WHATWG and
// IANA registries. A detector that cannot name a supported encoding returns
// an error; callers never receive a guessed default.
package charset
