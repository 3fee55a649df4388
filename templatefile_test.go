package buglink_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/gopatchy/buglink"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateFile(t *testing.T) {
	t.Parallel()

	tmpl, err := buglink.ParseTemplateFile("Crash: {error}\nOS: {os}\nVersion: {version}\n")
	require.NoError(t, err)
	require.Equal(t, "Crash: {error}", tmpl.Title())
	require.Equal(t, "OS: {os}\nVersion: {version}", tmpl.Body())
	require.Equal(t, []string{"error", "os", "version"}, tmpl.Placeholders())
}

func TestParseTemplateFileTitleOnly(t *testing.T) {
	t.Parallel()

	tmpl, err := buglink.ParseTemplateFile("Crash: {error}")
	require.NoError(t, err)
	require.Equal(t, "Crash: {error}", tmpl.Title())
	require.Equal(t, "", tmpl.Body())
}

func TestParseTemplateFileCRLF(t *testing.T) {
	t.Parallel()

	tmpl, err := buglink.ParseTemplateFile("Crash\r\nline1\r\nline2\r\n")
	require.NoError(t, err)
	require.Equal(t, "Crash", tmpl.Title())
	require.Equal(t, "line1\nline2", tmpl.Body())
}

func TestParseTemplateFileTrims(t *testing.T) {
	t.Parallel()

	tmpl, err := buglink.ParseTemplateFile("  Crash  \n\nbody\n\n")
	require.NoError(t, err)
	require.Equal(t, "Crash", tmpl.Title())
	require.Equal(t, "body", tmpl.Body())
}

func TestParseTemplateFileEmpty(t *testing.T) {
	t.Parallel()

	_, err := buglink.ParseTemplateFile("")
	require.ErrorIs(t, err, buglink.ErrInvalidTemplateFile)
}

func TestParseTemplateFileBlankTitle(t *testing.T) {
	t.Parallel()

	_, err := buglink.ParseTemplateFile("   \nbody\n")
	require.ErrorIs(t, err, buglink.ErrInvalidTemplateFile)
	require.ErrorContains(t, err, "missing title")
}

func TestParseTemplateFileLabels(t *testing.T) {
	t.Parallel()

	tmpl, err := buglink.ParseTemplateFile("Crash\nbody\n", "bug", "crash")
	require.NoError(t, err)
	require.Equal(t, []string{"bug", "crash"}, tmpl.Labels())
}

func TestLoadTemplateFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"templates/crash.tmpl": &fstest.MapFile{
			Data: []byte("Crash: {error}\nOS: {os}\n"),
		},
	}

	tmpl, err := buglink.LoadTemplateFile(fsys, "templates/crash.tmpl", "bug")
	require.NoError(t, err)
	require.Equal(t, "Crash: {error}", tmpl.Title())
	require.Equal(t, "OS: {os}", tmpl.Body())
	require.Equal(t, []string{"bug"}, tmpl.Labels())
}

func TestLoadTemplateFileMissing(t *testing.T) {
	t.Parallel()

	_, err := buglink.LoadTemplateFile(fstest.MapFS{}, "nope.tmpl")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
