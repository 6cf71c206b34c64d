package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/gin-gonic/gin"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate id", apperr.ErrDuplicateID, http.StatusConflict},
		{"question already judged", model.ErrQuestionAnswered, http.StatusConflict},
		{"question not judged yet", model.ErrQuestionNotAnswered, http.StatusConflict},
		{"record not found", apperr.ErrNotFound, http.StatusNotFound},
		{"invalid input", apperr.ErrInvalidInput, http.StatusBadRequest},
		{"import validation", apperr.ErrImportValidation, http.StatusBadRequest},
		{"corrupt snapshot", apperr.ErrBackupCorrupt, http.StatusUnprocessableEntity},
		{"storage unavailable", apperr.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{"store not opened", apperr.ErrNotInitialized, http.StatusServiceUnavailable},
		{"generation unavailable", apperr.ErrGenerationUnavailable, http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err, "Request failed")

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if !strings.Contains(body.Error, tc.err.Error()) {
				t.Fatalf("body %q does not mention %q", body.Error, tc.err.Error())
			}
		})
	}
}

func TestRespondErrorUnwrapsWrappedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, fmt.Errorf("loading candidate c1: %w", apperr.ErrNotFound), "Failed to load candidate")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
