package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"wrapped item not found", fmt.Errorf("build tree anvil_ii: %w", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"loadout not found", domain.ErrLoadoutNotFound, http.StatusNotFound, ErrMsgLoadoutNotFoundError},
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound, ErrMsgEntryNotFoundError},
		{"invalid quantity", fmt.Errorf("demand 2: %w", domain.ErrInvalidQuantity), http.StatusBadRequest, ErrMsgInvalidQuantityError},
		{"slot mismatch", domain.ErrSlotMismatch, http.StatusBadRequest, ErrMsgSlotMismatchError},
		{"catalog empty", domain.ErrCatalogEmpty, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"catalog unavailable", domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"internal detail hidden", errors.New("dial tcp 10.0.0.5:443: connection refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusCreated, SuccessResponse{Message: MsgCatalogRefreshed})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SuccessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, MsgCatalogRefreshed, resp.Message)
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]float64{"weight": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ErrMsgGenericServerError, resp.Error)
}
