// Package detect identifies the language(s) present in an utterance,
// including code-switched text that mixes several languages in one
// sentence. Non-Latin tokens are classified by Unicode script, which
// is essentially free and very accurate; Latin-script tokens go
// through a statistical detector (lingua-go). Short Latin tokens are
// too ambiguous for either and inherit the running context language.
package detect
