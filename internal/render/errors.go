package render

import "errors"

var (
	// ErrValidation indicates a required request field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrRenderEngine indicates the PDF engine failed or timed out.
	ErrRenderEngine = errors.New("render engine failed")
)

const (
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	ErrorCodeRenderEngine     = "RENDER_ENGINE_ERROR"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)
