package departureerrors

import (
	"net/http"

	"rrhh-admin/internal/shared/apperror"
)

var (
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A reason is required to reject a request",
		http.StatusBadRequest,
	)

	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"Decision must be approved or rejected",
		http.StatusBadRequest,
	)
)
