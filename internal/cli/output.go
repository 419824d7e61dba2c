package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/todoapi/internal/cli/styles"
	"github.com/thenoetrevino/todoapi/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if todos, ok := data.([]models.Todo); ok {
			for _, todo := range todos {
				fmt.Printf("%d\n", todo.ID)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Message outputs a confirmation line; quiet mode prints nothing
func (f *OutputFormatter) Message(text string) error {
	if f.Quiet {
		return nil
	}
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"message": text,
		})
	}
	fmt.Println(styles.SuccessStyle.Render("✓") + " " + text)
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.LabelStyle.Render("Suggestion:"), suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	switch v := data.(type) {
	case models.Todo:
		fmt.Println(styles.RenderTodo(v))
	case []models.Todo:
		if len(v) == 0 {
			fmt.Println(styles.SubtitleStyle.Render("No todos"))
			return nil
		}
		for _, todo := range v {
			fmt.Println(styles.RenderTodo(todo))
		}
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}
