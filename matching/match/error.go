package match

import (
	"net/http"

	"github.com/skovr/talentmatch/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("MATCH")

var (
	CodeInvalidWeights = ErrRegistry.Register("INVALID_WEIGHTS", errx.TypeValidation, http.StatusBadRequest, "Invalid score weights")
	CodeEmptyBatch     = ErrRegistry.Register("EMPTY_BATCH", errx.TypeValidation, http.StatusBadRequest, "Batch contains no candidates")
	CodeBatchTooLarge  = ErrRegistry.Register("BATCH_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "Batch exceeds the candidate limit")
	CodeScoringFailed  = ErrRegistry.Register("SCORING_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Match scoring failed")
)

func ErrInvalidWeights() *errx.Error {
	return ErrRegistry.New(CodeInvalidWeights)
}

func ErrEmptyBatch() *errx.Error {
	return ErrRegistry.New(CodeEmptyBatch)
}

func ErrBatchTooLarge() *errx.Error {
	return ErrRegistry.New(CodeBatchTooLarge)
}

func ErrScoringFailed() *errx.Error {
	return ErrRegistry.New(CodeScoringFailed)
}
