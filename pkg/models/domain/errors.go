package domain

import "errors"

var (
	// ErrMissingAnswer indicates a question had no collected answer when
	// scoring was invoked. Integration error, fatal for the run.
	ErrMissingAnswer = errors.New("missing answer")

	// ErrInvalidScore indicates a score outside [0,100] reached the
	// classifier, which points at an arithmetic bug upstream.
	ErrInvalidScore = errors.New("score outside [0,100]")

	// ErrInvalidInput covers malformed caller input such as an empty
	// organisation name or an unusable question bank.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExportFailure wraps failures while writing the export document.
	ErrExportFailure = errors.New("export failed")
)
