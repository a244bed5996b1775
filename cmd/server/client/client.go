// Package client provides commands that exercise a running encounter
// service over its REST API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/handlers/rest/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the encounter service",
	Long:  `Client commands make real HTTP requests against a running encounter service.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "Encounter service base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(listMonstersCmd)
	ClientCmd.AddCommand(getMonsterCmd)
	ClientCmd.AddCommand(rollDiceCmd)
}

// apiError is returned for any non-2xx response
type apiError struct {
	Status int
	Body   v1alpha1.ErrorResponse
}

func (e *apiError) Error() string {
	if e.Body.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d (%s): %s", e.Status, e.Body.Code, e.Body.Message)
}

// doJSON sends body (if non-nil) to base+path and decodes the response into out
func doJSON(ctx context.Context, httpClient *http.Client, base, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(base, "/")+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr.Body) // nolint:errcheck // status is enough
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func call(method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return doJSON(ctx, http.DefaultClient, serverAddr, method, path, body, out)
}
