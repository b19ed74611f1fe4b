package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumehub/internal/domain"
	"resumehub/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrProjectNotFound, http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{domain.ErrFileNotFound, http.StatusNotFound, "FILE_NOT_FOUND"},
		{domain.ErrFileMissingOnDisk, http.StatusNotFound, "FILE_MISSING"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrInvalidCategory, http.StatusBadRequest, "INVALID_CATEGORY"},
		{domain.ErrEmptyProjectName, http.StatusBadRequest, "EMPTY_PROJECT_NAME"},
		{domain.ErrDuplicateProjectName, http.StatusConflict, "DUPLICATE_PROJECT_NAME"},
		{domain.ErrInvalidStatus, http.StatusBadRequest, "INVALID_STATUS"},
		{domain.ErrEmptyPayload, http.StatusBadRequest, "EMPTY_PAYLOAD"},
		{domain.ErrStoreFailed, http.StatusInternalServerError, "STORE_FAILED"},
		{errors.New("surprise"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		status, code, msg := handler.MapDomainError(tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, code)
		assert.NotEmpty(t, msg)
	}
}

func TestMapDomainErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrFileTooLarge)
	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "FILE_TOO_LARGE", code)
}
