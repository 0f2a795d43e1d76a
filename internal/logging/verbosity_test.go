package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	for repeats, expected := range map[int]log.Level{
		0: log.FatalLevel,
		1: log.ErrorLevel,
		2: log.WarnLevel,
		3: log.InfoLevel,
		4: log.DebugLevel,
		5: log.TraceLevel,
		9: log.TraceLevel,
	} {
		SetVerbosity(make([]bool, repeats))
		require.Equal(t, expected, log.GetLevel(), "%d repetitions", repeats)
	}
}

func Test_VerbosityName(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetVerbosity(nil)
	require.Equal(t, "FATAL", VerbosityName())

	SetVerbosity(make([]bool, 3))
	require.Equal(t, "INFO", VerbosityName())
}
