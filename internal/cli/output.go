package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// HumanRenderer is implemented by results that know how to present
// themselves in human-readable mode
type HumanRenderer interface {
	RenderHuman() string
}

// QuietLister is implemented by list results; quiet mode prints one line
// per item
type QuietLister interface {
	QuietLines() []string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if lister, ok := data.(QuietLister); ok {
			for _, line := range lister.QuietLines() {
				fmt.Println(line)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// ReportError prints err with its code and suggestion and returns the
// *ExitError a command should return for it
func (f *OutputFormatter) ReportError(err error) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), Suggestion(err)); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &ExitError{Code: ExitCodeFor(err), Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if renderer, ok := data.(HumanRenderer); ok {
		fmt.Println(renderer.RenderHuman())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
