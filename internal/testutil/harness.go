package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/jobwirego/internal/app"
	"github.com/vk/jobwirego/internal/hcl"
	"github.com/vk/jobwirego/internal/identity"
)

// CompileResult holds the outcomes of an end-to-end compile run.
type CompileResult struct {
	Stdout    string
	LogOutput string
	Err       error
}

// RunCompile writes the given HCL files into a temp directory, compiles the
// job with a fixed "tester" identity, and captures descriptor output and
// logs. instance selects single-instance materialization; pass
// app.FullDescriptor for the whole job.
func RunCompile(t *testing.T, files map[string]string, instance int) *CompileResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-jobwirego-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		JobPath:   tmpDir,
		Instance:  instance,
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)

	var outBuf, logBuf SafeBuffer
	result := &CompileResult{}
	func() {
		// NewApp panics on load failures; fold that into the result so
		// tests can assert on bad definitions too.
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup failed: %v", r)
			}
		}()
		compiler := app.NewApp(&outBuf, &logBuf, cfg, hcl.NewLoader()).
			WithIdentity(identity.Static("tester"))
		result.Err = compiler.Run(context.Background())
	}()

	result.Stdout = outBuf.String()
	result.LogOutput = logBuf.String()
	return result
}
