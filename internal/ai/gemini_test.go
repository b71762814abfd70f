package ai

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestGeminiError_KeepsAPIStatus(t *testing.T) {
	err := geminiError(fmt.Errorf("generate: %w", &googleapi.Error{Code: http.StatusForbidden, Message: "API key not valid"}))

	assert.True(t, IsAuth(err))
	var aiErr *Error
	assert.True(t, errors.As(err, &aiErr))
	assert.Equal(t, http.StatusForbidden, aiErr.StatusCode)
}

func TestGeminiError_TransportFailure(t *testing.T) {
	err := geminiError(errors.New("dial tcp: no route to host"))

	assert.False(t, IsAuth(err))
	assert.ErrorContains(t, err, "request failed")
}
