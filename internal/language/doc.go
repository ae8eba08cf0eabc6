// Package language defines the set of languages polyglot can translate
// between and the mapping between human-readable names and the
// model-internal NLLB-200 codes. The table is static and read-only
// after process start.
package language
