package download

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/tubeflow/internal/model"
)

// ErrBusy is returned by Start while another request is in flight
var ErrBusy = errors.New("a download is already in progress")

// Validated fields
const (
	FieldURL    = "url"
	FieldFolder = "folder"
)

// User-facing texts
const (
	TitleError         = "Error"
	TitleDownloadError = "Download Error"

	MessageMissingURL    = "Please enter a YouTube URL."
	MessageMissingFolder = "Please select a download folder."
	MessageJavaScript    = "JavaScript runtime required. Please install Node.js from https://nodejs.org/"
	MessageCanceled      = "Download cancelled"
)

const javascriptMarker = "javascript"

// ValidationError reports a form field that prevents a download from starting
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Message returns the text shown to the user
func (e *ValidationError) Message() string {
	switch e.Field {
	case FieldURL:
		return MessageMissingURL
	case FieldFolder:
		return MessageMissingFolder
	}
	return e.Reason
}

// EngineError is a failure reported by the download engine.
// Its text is the engine's own message, unmodified.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Validate checks the preconditions for starting a download
func Validate(req model.DownloadRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return &ValidationError{Field: FieldURL, Reason: "missing URL"}
	}
	if strings.TrimSpace(req.Folder) == "" {
		return &ValidationError{Field: FieldFolder, Reason: "missing folder"}
	}
	return nil
}

// FailureKind classifies how a download ended
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureValidation
	FailureEngine
	FailureUnclassified
	FailureCanceled
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureValidation:
		return "validation"
	case FailureEngine:
		return "engine"
	case FailureUnclassified:
		return "unclassified"
	case FailureCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure is what the user is told about an error
type Failure struct {
	Kind    FailureKind
	Title   string
	Message string
}

// Classify turns an error into a user-facing failure
func Classify(err error) Failure {
	if err == nil {
		return Failure{Kind: FailureNone}
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return Failure{Kind: FailureValidation, Title: TitleError, Message: verr.Message()}
	}

	if errors.Is(err, context.Canceled) {
		return Failure{Kind: FailureCanceled, Title: TitleError, Message: MessageCanceled}
	}

	var eerr *EngineError
	if errors.As(err, &eerr) {
		if strings.Contains(strings.ToLower(eerr.Error()), javascriptMarker) {
			return Failure{Kind: FailureEngine, Title: TitleError, Message: MessageJavaScript}
		}
		return Failure{Kind: FailureEngine, Title: TitleDownloadError, Message: eerr.Error()}
	}

	return Failure{Kind: FailureUnclassified, Title: TitleError, Message: err.Error()}
}
