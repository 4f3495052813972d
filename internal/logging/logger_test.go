package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, lvl, "пустая строка означает INFO")

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_ConsoleLevelFilter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: WARN, Output: &buf})
	defer Configure(Options{ConsoleLevel: INFO, FileLevel: DEBUG})

	logger, err := NewLogger("test")
	require.NoError(t, err)

	logger.Info("скрытое сообщение")
	logger.Warn("видимое сообщение %d", 7)

	out := buf.String()
	assert.NotContains(t, out, "скрытое")
	assert.Contains(t, out, "видимое сообщение 7")
	assert.Contains(t, out, "component=test")
}

func TestLogger_FileSink(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	dir := t.TempDir()
	var buf bytes.Buffer
	Configure(Options{Dir: dir, ConsoleLevel: ERROR, FileLevel: DEBUG, Output: &buf})
	defer Configure(Options{ConsoleLevel: INFO, FileLevel: DEBUG})

	logger, err := NewLogger("world")
	require.NoError(t, err)
	logger.Debug("блок разрушен")
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "должен быть создан один файл логов")

	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "блок разрушен")
	assert.Empty(t, buf.String(), "DEBUG не должен попадать в консоль при уровне ERROR")
}

func TestLoggerManager_Components(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: INFO, Output: &buf})
	defer Configure(Options{ConsoleLevel: INFO, FileLevel: DEBUG})

	lm := &LoggerManager{loggers: make(map[string]*Logger)}
	a := lm.MustGetLogger("sim")
	b := lm.MustGetLogger("sim")
	assert.Same(t, a, b, "повторный запрос должен возвращать тот же логгер")

	lm.MustGetLogger("world")
	assert.Equal(t, []string{"sim", "world"}, lm.ListComponents())

	require.NoError(t, lm.SetLogLevel("sim", ERROR, ERROR))
	assert.Error(t, lm.SetLogLevel("missing", ERROR, ERROR))
	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestNilLogger_NoPanic(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("nothing") })
	assert.NoError(t, l.Close())
}
