// Package processor contains the CLI-mode orchestration for polyglot.
// It builds the translation service from flags and configuration,
// handles one-shot and batch translation, and launches the GUI when
// no text is given. This package serves as the coordinator between
// the cli, detect, translate and gui packages.
package processor
