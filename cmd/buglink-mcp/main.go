package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/gopatchy/buglink"
	"github.com/gopatchy/buglink/pkg/version"
	"github.com/jessevdk/go-flags"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var handle *buglink.Handle

type options struct {
	Config flags.Filename `short:"c" long:"config" description:"registry config file (yaml, json, or toml)" required:"true"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
buglink-mcp serves buglink template operations over the Model Context
Protocol on stdio.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	root, err := os.OpenRoot(filepath.Dir(string(opts.Config)))
	if err != nil {
		log.Fatalf("Failed to open config root: %v", err)
	}
	defer root.Close()

	b, err := buglink.LoadConfig(root.FS(), filepath.Base(string(opts.Config)))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	handle, err = b.Handle()
	if err != nil {
		log.Fatalf("Failed to build handle: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"buglink-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	paramsParam := mcp.WithObject("params",
		mcp.Description("Template parameters as key-value pairs"),
	)

	templatesTool := mcp.NewTool("templates",
		mcp.WithDescription("List registered bug report templates with their placeholders and labels"),
	)
	mcpServer.AddTool(templatesTool, templatesHandler)

	urlTool := mcp.NewTool("url",
		mcp.WithDescription("Generate a pre-filled GitHub new-issue URL from a template"),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Template name"),
		),
		paramsParam,
	)
	mcpServer.AddTool(urlTool, urlHandler)

	previewTool := mcp.NewTool("preview",
		mcp.WithDescription("Render the diagnostic block a report would print"),
		mcp.WithString("template",
			mcp.Required(),
			mcp.Description("Template name"),
		),
		paramsParam,
		mcp.WithString("file",
			mcp.Description("Call site file shown in the block"),
		),
		mcp.WithNumber("line",
			mcp.Description("Call site line shown in the block"),
		),
	)
	mcpServer.AddTool(previewTool, previewHandler)

	usageTool := mcp.NewTool("usage",
		mcp.WithDescription("Get buglink usage documentation"),
	)
	mcpServer.AddTool(usageTool, usageHandler)

	versionTool := mcp.NewTool("version",
		mcp.WithDescription("Get version and build information for buglink"),
	)
	mcpServer.AddTool(versionTool, versionHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// requestParams extracts the optional params object, ordered by sorted key
// for deterministic output.
func requestParams(request mcp.CallToolRequest) buglink.Params {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}

	obj, ok := args["params"].(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := make(buglink.Params, 0, len(keys))
	for _, key := range keys {
		params = append(params, buglink.P(key, obj[key]))
	}

	return params
}

func templatesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := map[string]any{}

	r := handle.Registry()
	for _, name := range r.Names() {
		t, _ := r.Template(name)

		entries[name] = map[string]any{
			"title":        t.Title(),
			"body":         t.Body(),
			"labels":       t.Labels(),
			"placeholders": t.Placeholders(),
		}
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

func urlHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	url, err := handle.URL(name, requestParams(request)...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(url), nil
}

func previewHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]any)

	file := "unknown"
	if v, ok := args["file"].(string); ok && v != "" {
		file = v
	}

	line := 0
	if v, ok := args["line"].(float64); ok {
		line = int(v)
	}

	_, block, err := handle.Generate(file, line, name, requestParams(request)...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(block), nil
}

func usageHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(buglink.Usage()), nil
}

func versionHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bi := version.Get()
	if bi == nil {
		return mcp.NewToolResultError("ReadBuildInfo() failed"), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s", bi)), nil
}
