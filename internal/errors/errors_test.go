package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid", fmt.Errorf("%w: name is required", ErrInvalid), http.StatusBadRequest, ErrCodeInvalidInput},
		{"not found", ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"duplicate", fmt.Errorf("%w: users.email", ErrDuplicate), http.StatusConflict, ErrCodeAlreadyExists},
		{"conflict", fmt.Errorf("%w: row changed", ErrConflict), http.StatusConflict, ErrCodeConflict},
		{"foreign key", ErrForeignKey, http.StatusUnprocessableEntity, ErrCodeInvalidReference},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body.Message)
				assert.Len(t, c.Errors, 1)
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}
