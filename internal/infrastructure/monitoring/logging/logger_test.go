package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Defaults(t *testing.T) {
	l, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestZapLogger_FieldsAndNaming(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("planner").With(String("case_reference", "1675"))

	l.Info("intents planned",
		Int("intents", 3),
		Bool("cloaked", false),
		Duration("elapsed", 5*time.Millisecond),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "intents planned", e.Message)
	assert.Equal(t, "planner", e.LoggerName)

	fields := e.ContextMap()
	assert.Equal(t, "1675", fields["case_reference"])
	assert.EqualValues(t, 3, fields["intents"])
	assert.Equal(t, false, fields["cloaked"])
}

func TestErrField_Nil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestDefaultLogger_SwapAndIgnoreNil(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	core, observed := observer.New(zapcore.InfoLevel)
	SetDefault(NewLoggerFromCore(core))
	SetDefault(nil) // ignored

	Default().Info("hello")
	assert.Equal(t, 1, observed.Len())
}
