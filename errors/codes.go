package errors

// ErrorCode identifies an application error class
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001

	// Upload
	ErrorCode_UPLOAD_MISSING_FILE     ErrorCode = 2000
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE ErrorCode = 2001
	ErrorCode_UPLOAD_READ_FAILED      ErrorCode = 2002

	// Analysis pipeline
	ErrorCode_EMOTION_ENGINE_FAILED  ErrorCode = 3000
	ErrorCode_NO_PROSODY_DATA        ErrorCode = 3001
	ErrorCode_TRANSCRIPTION_FAILED   ErrorCode = 3002
	ErrorCode_FEEDBACK_ENGINE_FAILED ErrorCode = 3003
	ErrorCode_ARTIFACT_FAILED        ErrorCode = 3004

	// Slide rendering
	ErrorCode_RENDER_FAILED ErrorCode = 4000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_UPLOAD_MISSING_FILE:     "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_UNSUPPORTED_TYPE: "UPLOAD_UNSUPPORTED_TYPE",
	ErrorCode_UPLOAD_READ_FAILED:      "UPLOAD_READ_FAILED",
	ErrorCode_EMOTION_ENGINE_FAILED:   "EMOTION_ENGINE_FAILED",
	ErrorCode_NO_PROSODY_DATA:         "NO_PROSODY_DATA",
	ErrorCode_TRANSCRIPTION_FAILED:    "TRANSCRIPTION_FAILED",
	ErrorCode_FEEDBACK_ENGINE_FAILED:  "FEEDBACK_ENGINE_FAILED",
	ErrorCode_ARTIFACT_FAILED:         "ARTIFACT_FAILED",
	ErrorCode_RENDER_FAILED:           "RENDER_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
