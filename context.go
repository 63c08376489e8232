package packman

// WithContext adds a single context field to an error.
// Returns a new PackError with the context field added; existing context
// fields are preserved. The receiver-style value is never mutated.
//
// Returns nil if err is nil.
//
// Example:
//
//	err := packman.New(packman.CodeGarbled, "bad closure layout")
//	err = packman.WithContext(err, "offset", 128)
//	err = packman.WithContext(err, "info_table", "CONSTR_2_0")
func WithContext(err PackError, key string, value interface{}) PackError {
	if err == nil {
		return nil
	}

	newContext := make(map[string]interface{})
	if existingCtx := err.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	newContext[key] = value

	return &packError{
		code:           err.Code(),
		classification: err.Classification(),
		message:        err.Message(),
		context:        newContext,
		cause:          err.Unwrap(),
	}
}

// WithContextMap adds multiple context fields to an error.
// Returns a new PackError with the context fields merged. Existing fields
// are preserved; new fields override existing ones with the same key.
// A nil or empty map returns err unchanged.
//
// Returns nil if err is nil.
//
// Example:
//
//	err := packman.New(packman.CodeBinaryMismatch, "fingerprint mismatch")
//	err = packman.WithContextMap(err, map[string]interface{}{
//	    "want": wantFP,
//	    "got":  gotFP,
//	})
func WithContextMap(err PackError, ctx map[string]interface{}) PackError {
	if err == nil {
		return nil
	}
	if len(ctx) == 0 {
		return err
	}

	newContext := make(map[string]interface{})
	if existingCtx := err.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &packError{
		code:           err.Code(),
		classification: err.Classification(),
		message:        err.Message(),
		context:        newContext,
		cause:          err.Unwrap(),
	}
}

// WithClassification overrides the classification of an error.
// Returns a new PackError with the specified classification.
//
// This is for call sites that know better than the default mapping. For
// example, a caller that has exhausted its blackhole retry budget can mark
// the error permanent before propagating it.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = packman.WithClassification(err, packman.ClassificationPermanent)
func WithClassification(err PackError, classification ErrorClassification) PackError {
	if err == nil {
		return nil
	}

	// Copy context to preserve immutability
	var newContext map[string]interface{}
	if existingCtx := err.Context(); existingCtx != nil {
		newContext = make(map[string]interface{}, len(existingCtx))
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}

	return &packError{
		code:           err.Code(),
		classification: classification,
		message:        err.Message(),
		context:        newContext,
		cause:          err.Unwrap(),
	}
}
