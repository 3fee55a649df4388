package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"

	"github.com/gopatchy/buglink"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	h, err := buglink.New("acme", "rocket").
		AddTemplate("crash", buglink.NewTemplate("Crash: {error}", "OS: {os}").WithLabels("bug")).
		AddTemplate("daily", buglink.NewTemplate("Daily check failed", "")).
		Hyperlinks(buglink.HyperlinkNever).
		Handle()
	if err != nil {
		log.Fatalf("Failed to build handle: %v", err)
	}

	handle = h

	os.Exit(m.Run())
}

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = tool
	request.Params.Arguments = args

	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return content.Text
}

func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)

	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return content.Text
}

func TestTemplatesHandler(t *testing.T) {
	t.Parallel()

	result, err := templatesHandler(context.Background(), callRequest("templates", nil))
	require.NoError(t, err)

	entries := map[string]struct {
		Title        string   `json:"title"`
		Body         string   `json:"body"`
		Labels       []string `json:"labels"`
		Placeholders []string `json:"placeholders"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &entries))

	require.Len(t, entries, 2)
	require.Equal(t, "Crash: {error}", entries["crash"].Title)
	require.Equal(t, "OS: {os}", entries["crash"].Body)
	require.Equal(t, []string{"bug"}, entries["crash"].Labels)
	require.Equal(t, []string{"error", "os"}, entries["crash"].Placeholders)
	require.Equal(t, "Daily check failed", entries["daily"].Title)
}

func TestURLHandler(t *testing.T) {
	t.Parallel()

	result, err := urlHandler(context.Background(), callRequest("url", map[string]any{
		"template": "crash",
		"params": map[string]any{
			"error": "NPE",
			"os":    "linux",
		},
	}))
	require.NoError(t, err)
	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=Crash%3A%20NPE&body=OS%3A%20linux&labels=bug",
		resultText(t, result))
}

func TestURLHandlerMissingParam(t *testing.T) {
	t.Parallel()

	result, err := urlHandler(context.Background(), callRequest("url", map[string]any{
		"template": "crash",
	}))
	require.NoError(t, err)
	require.Contains(t, errorText(t, result), "missing parameter")
}

func TestURLHandlerMissingTemplateArg(t *testing.T) {
	t.Parallel()

	result, err := urlHandler(context.Background(), callRequest("url", map[string]any{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestURLHandlerUnknownTemplate(t *testing.T) {
	t.Parallel()

	result, err := urlHandler(context.Background(), callRequest("url", map[string]any{
		"template": "nope",
	}))
	require.NoError(t, err)
	require.Contains(t, errorText(t, result), "unknown template")
}

func TestPreviewHandler(t *testing.T) {
	t.Parallel()

	result, err := previewHandler(context.Background(), callRequest("preview", map[string]any{
		"template": "crash",
		"file":     "main.go",
		"line":     float64(42),
		"params": map[string]any{
			"error": "NPE",
			"os":    "linux",
		},
	}))
	require.NoError(t, err)

	require.Equal(t, `🐛 BUG ENCOUNTERED in main.go:42
   Template: crash
   Parameters:
     error: NPE
     os: linux
   File a bug report: https://github.com/acme/rocket/issues/new?title=Crash%3A%20NPE&body=OS%3A%20linux&labels=bug

`, resultText(t, result))
}

func TestPreviewHandlerDefaults(t *testing.T) {
	t.Parallel()

	result, err := previewHandler(context.Background(), callRequest("preview", map[string]any{
		"template": "daily",
	}))
	require.NoError(t, err)
	require.Contains(t, resultText(t, result), "🐛 BUG ENCOUNTERED in unknown:0\n")
}

func TestUsageHandler(t *testing.T) {
	t.Parallel()

	result, err := usageHandler(context.Background(), callRequest("usage", nil))
	require.NoError(t, err)
	require.Contains(t, resultText(t, result), "# buglink")
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	result, err := versionHandler(context.Background(), callRequest("version", nil))
	require.NoError(t, err)
	require.NotEmpty(t, resultText(t, result))
}
