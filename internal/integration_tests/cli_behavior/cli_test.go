package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/jobwirego/internal/app"
	"github.com/vk/jobwirego/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "happy path with all flags",
			args: []string{
				"-job", "/test/job.hcl",
				"--log-level=debug",
				"--log-format=text",
				"--instance=2",
			},
			expectedConfig: &app.Config{
				JobPath:   "/test/job.hcl",
				Instance:  2,
				LogLevel:  "debug",
				LogFormat: "text",
			},
		},
		{
			name: "shorthand flag and defaults",
			args: []string{"-j", "/short/job.hcl"},
			expectedConfig: &app.Config{
				JobPath:   "/short/job.hcl",
				Instance:  app.FullDescriptor,
				LogLevel:  "info",
				LogFormat: "json",
			},
		},
		{
			name: "positional argument for path",
			args: []string{"/positional/job.hcl"},
			expectedConfig: &app.Config{
				JobPath:   "/positional/job.hcl",
				Instance:  app.FullDescriptor,
				LogLevel:  "info",
				LogFormat: "json",
			},
		},
		{
			name:       "no path prints usage and exits cleanly",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"))
			},
		},
		{
			name:      "invalid log format",
			args:      []string{"-job", "/x", "--log-format=xml"},
			expectErr: true,
		},
		{
			name:      "invalid log level",
			args:      []string{"-job", "/x", "--log-level=loud"},
			expectErr: true,
		},
		{
			name:      "unknown flag",
			args:      []string{"--frobnicate"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var output bytes.Buffer

			config, shouldExit, err := cli.Parse(tc.args, &output)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, output.String())
			}
		})
	}
}
