package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellviz/nicodash/internal/app/appconfig"
	"github.com/cellviz/nicodash/internal/app/appcontext"
)

func TestConfigureLevels(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			LogJsonStdout:    true,
			LogFile:          filepath.Join(t.TempDir(), "app.log"),
			LogFileMaxSizeMB: 1,
		},
		AppContext: appcontext.Declare(appcontext.EnvCLI),
	}

	Configure(conf)
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())

	conf.DevMode = true
	Configure(conf)
	assert.Equal(t, zerolog.TraceLevel, log.Logger.GetLevel())
}

func TestFxLoggerTrimsNewline(t *testing.T) {
	n, err := fxLogger{l: zerolog.Nop()}.Write([]byte("PROVIDE\n"))
	require.NoError(t, err)
	assert.Equal(t, len("PROVIDE\n"), n)
}
