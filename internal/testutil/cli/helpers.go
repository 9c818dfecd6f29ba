package cli

import (
	"encoding/json"
	"testing"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// ParseJSONData returns the "data" field of a successful JSON response
// decoded into out
func ParseJSONData(t *testing.T, output string, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal([]byte(output), &envelope); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if !envelope.Success {
		t.Fatalf("Expected a successful response, got: %s", output)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("Failed to parse JSON data: %v\nOutput: %s", err, output)
	}
}

// ErrorCode returns error.code of a failed JSON response
func ErrorCode(t *testing.T, output string) string {
	t.Helper()

	result := ParseJSON(t, output)
	if result["success"] != false {
		t.Fatalf("Expected a failed response, got: %s", output)
	}
	errData, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("Expected an error object, got: %s", output)
	}
	code, _ := errData["code"].(string)
	return code
}
