package packman

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable representation of a PackError for
// logs and API surfaces. It is display-only: nothing ever parses it back
// into an ErrorCode, and the wrapped cause chain is intentionally excluded.
type ErrorResponse struct {
	// Code is the numeric catalog code, identical to the native constant.
	Code int `json:"code"`

	// Name is the code's stable native identifier (e.g. "P_GARBLED").
	Name string `json:"name"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts a PackError to an ErrorResponse suitable for JSON
// serialization. Returns nil if err is nil.
//
// Example:
//
//	if err := packman.FromStatus(status); err != nil {
//	    log.Printf("pack failed: %s", mustJSON(packman.ToJSON(err)))
//	}
func ToJSON(err PackError) *ErrorResponse {
	if err == nil {
		return nil
	}

	return &ErrorResponse{
		Code:           int(err.Code()),
		Name:           err.Code().Name(),
		Message:        err.Message(),
		Classification: string(err.Classification()),
		Context:        err.Context(),
	}
}

// MarshalJSON implements json.Marshaler for packError, so PackError values
// marshal directly with json.Marshal without an explicit ToJSON call.
//
// Example:
//
//	err := packman.New(packman.CodeGarbled, "bad packet")
//	data, _ := json.Marshal(err)
//	// {"code":6,"name":"P_GARBLED","message":"bad packet","classification":"PERMANENT"}
func (e *packError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:           int(e.code),
		Name:           e.code.Name(),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, Wrap(err, CodeImpossible, "failed to marshal error response")
	}
	return data, nil
}
