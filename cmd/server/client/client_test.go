package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-encounters/internal/handlers/rest/v1alpha1"
)

func TestParseRoster(t *testing.T) {
	roster, err := parseRoster([]string{"Goblin=3", "Orc", " Goblin = 1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Goblin": 4, "Orc": 1}, roster)

	_, err = parseRoster([]string{"=2"})
	assert.Error(t, err)

	_, err = parseRoster([]string{"Goblin=many"})
	assert.Error(t, err)

	_, err = parseRoster([]string{"Goblin=-1"})
	assert.Error(t, err)
}

func TestDoJSON_DecodesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dice/roll", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req v1alpha1.RollDiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1d20", req.Notation)

		_ = json.NewEncoder(w).Encode(v1alpha1.RollDiceResponse{RollID: "roll_1", Notation: "1d20", Total: 12})
	}))
	defer srv.Close()

	var resp v1alpha1.RollDiceResponse
	err := doJSON(context.Background(), srv.Client(), srv.URL+"/", http.MethodPost, "/dice/roll",
		&v1alpha1.RollDiceRequest{Notation: "1d20"}, &resp)
	require.NoError(t, err)
	assert.Equal(t, "roll_1", resp.RollID)
	assert.Equal(t, 12, resp.Total)
}

func TestDoJSON_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(v1alpha1.ErrorResponse{Code: "NOT_FOUND", Message: "monster not found: Tarrasque"})
	}))
	defer srv.Close()

	err := doJSON(context.Background(), srv.Client(), srv.URL, http.MethodGet, "/monsters/Tarrasque", nil, nil)
	require.Error(t, err)

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Body.Code)
	assert.Contains(t, err.Error(), "Tarrasque")
}
