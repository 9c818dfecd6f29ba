package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockRecord struct {
	ID   int
	Name string
}

func (m mockRecord) GetID() int {
	return m.ID
}

type mockList []string

func (m mockList) QuietLines() []string {
	return m
}

type mockRendered struct {
	Text string
}

func (m mockRendered) RenderHuman() string {
	return "rendered: " + m.Text
}

type mockPlain struct {
	Name  string
	Value int
}

// capture redirects *target (os.Stdout or os.Stderr) while fn runs
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	*target = w

	fn()

	_ = w.Close()
	*target = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := capture(t, &os.Stdout, func() {
		if err := formatter.Success(mockRecord{ID: 7, Name: "Ada"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["Name"] != "Ada" {
		t.Errorf("Expected data.Name to be 'Ada', got %v", data["Name"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{"record prints its ID", mockRecord{ID: 42, Name: "Ada"}, "42\n"},
		{"list prints one line per item", mockList{"S1", "S2"}, "S1\nS2\n"},
		{"empty list prints nothing", mockList{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := capture(t, &os.Stdout, func() {
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if output != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, output)
			}
		})
	}
}

func TestOutputFormatter_Success_QuietWithoutIDFallsThroughToJSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true, Quiet: true}

	output := capture(t, &os.Stdout, func() {
		_ = formatter.Success(mockPlain{Name: "Test", Value: 1})
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Expected JSON output, got: %s", output)
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		contains string
	}{
		{"renderer is used", mockRendered{Text: "Ada"}, "rendered: Ada"},
		{"fallback prints fields", mockPlain{Name: "Bob", Value: 3}, "Name:Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{}
			output := capture(t, &os.Stdout, func() {
				_ = formatter.Success(tt.data)
			})
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, output)
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := capture(t, &os.Stdout, func() {
		_ = formatter.ErrorWithSuggestion("NOT_FOUND", "student not found", "list students")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errorData := result["error"].(map[string]any)
	if errorData["code"] != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %v", errorData["code"])
	}
	if errorData["suggestion"] != "list students" {
		t.Errorf("Expected suggestion, got %v", errorData["suggestion"])
	}
}

func TestOutputFormatter_Error_OmitsSuggestion(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := capture(t, &os.Stdout, func() {
		_ = formatter.Error("CODE", "message")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	errorData := result["error"].(map[string]any)
	if _, exists := errorData["suggestion"]; exists {
		t.Error("Expected no suggestion field when calling Error()")
	}
}

func TestOutputFormatter_ErrorWithSuggestion_Human(t *testing.T) {
	formatter := &OutputFormatter{}

	output := capture(t, &os.Stderr, func() {
		_ = formatter.ErrorWithSuggestion("VALIDATION_ERROR", "name is required", "pass --name")
	})

	if !strings.Contains(output, "❌ Error: name is required") {
		t.Errorf("Expected error line, got %q", output)
	}
	if !strings.Contains(output, "💡 Suggestion: pass --name") {
		t.Errorf("Expected suggestion line, got %q", output)
	}
}

func TestOutputFormatter_ReportError(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	cause := &models.NotFoundError{Entity: "student", Key: "S9"}

	var returned error
	output := capture(t, &os.Stdout, func() {
		returned = formatter.ReportError(cause)
	})

	var exitErr *ExitError
	if !errors.As(returned, &exitErr) {
		t.Fatalf("Expected *ExitError, got %T", returned)
	}
	if exitErr.Code != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, exitErr.Code)
	}
	if !errors.Is(returned, models.ErrNotFound) {
		t.Error("Expected the cause to stay reachable through the ExitError")
	}
	if !strings.Contains(output, `"NOT_FOUND"`) {
		t.Errorf("Expected NOT_FOUND code in output, got %s", output)
	}
}
