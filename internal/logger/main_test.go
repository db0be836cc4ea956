package logger_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofolio/gofolio/internal/logger"
)

func TestInitRejectsEmptyServiceName(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "info"})
	require.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "loud", ServiceName: "test"})
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	testCases := []struct {
		name         string
		cfg          logger.Log
		outPutIsJSON bool
	}{
		{
			name: "console writer",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
		},
		{
			name: "json output",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				Console:     logger.Console{Enabled: true},
			},
			outPutIsJSON: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := testLoggerConfig(t, tc.cfg)
			assert.NotEmpty(t, out)

			if tc.outPutIsJSON {
				for _, line := range strings.Split(out, "\n") {
					if line == "" {
						continue
					}

					var decoded map[string]interface{}
					assert.NoError(t, json.Unmarshal([]byte(line), &decoded), "expected json line: %s", line)
				}
			}
		})
	}
}

func testLoggerConfig(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	require.NoError(t, logger.Init(cfg))

	log.Info().Msg("this info message should be seen")
	log.Error().Msg("this err message should be seen")

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	return <-outC
}
