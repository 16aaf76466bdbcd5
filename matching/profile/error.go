package profile

import (
	"net/http"

	"github.com/skovr/talentmatch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PROFILE")

// Error codes - Profile Operations
var (
	CodeNoReadableText       = ErrRegistry.Register("NO_READABLE_TEXT", errx.TypeValidation, http.StatusBadRequest, "Document contains no readable text")
	CodeProfileNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Profile not found")
	CodeProfileAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Profile already exists")
	CodeInvalidProfileData   = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid profile data")
	CodeStorageFailed        = ErrRegistry.Register("STORAGE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Profile storage operation failed")
	CodeSearchFailed         = ErrRegistry.Register("SEARCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Search operation failed")
)

// Error codes - Document Operations
var (
	CodeFileReadFailed       = ErrRegistry.Register("FILE_READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read document")
	CodeUnsupportedFileType  = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported document type")
	CodeTextExtractionFailed = ErrRegistry.Register("TEXT_EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to extract text from document")
)

func ErrNoReadableText() *errx.Error {
	return ErrRegistry.New(CodeNoReadableText)
}

func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrProfileAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeProfileAlreadyExists)
}

func ErrInvalidProfileData() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfileData)
}

func ErrStorageFailed() *errx.Error {
	return ErrRegistry.New(CodeStorageFailed)
}

func ErrSearchFailed() *errx.Error {
	return ErrRegistry.New(CodeSearchFailed)
}

func ErrFileReadFailed() *errx.Error {
	return ErrRegistry.New(CodeFileReadFailed)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrTextExtractionFailed() *errx.Error {
	return ErrRegistry.New(CodeTextExtractionFailed)
}
