package rangeropt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "RANGER_NTREE", envName("ntree"))
	assert.Equal(t, "RANGER_ALWAYSSPLITVARS", envName("alwayssplitvars"))
	assert.Equal(t, "RANGER_TARGETPARTITIONSIZE", envName("targetpartitionsize"))
}

func TestParser_EnvDefaults(t *testing.T) {
	p := NewParser(WithEnvLookup(mapLookup(map[string]string{
		"RANGER_NTREE":   "100",
		"RANGER_SAVEMEM": "1",
		"RANGER_SEED":    "9",
	})))

	res, err := p.ParseWithEnv([]string{"--file", "f", "--depvarname", "y"})
	require.Nil(t, err)
	assert.Equal(t, 100, res.Config.NumTrees)
	assert.True(t, res.Config.SaveMemory)
	assert.Equal(t, 9, res.Config.Seed)
}

func TestParser_ArgsOverrideEnv(t *testing.T) {
	p := NewParser(WithEnvLookup(mapLookup(map[string]string{
		"RANGER_NTREE": "100",
	})))

	res, err := p.ParseWithEnv([]string{"--file", "f", "--depvarname", "y", "--ntree", "20"})
	require.Nil(t, err)
	assert.Equal(t, 20, res.Config.NumTrees, "explicit arguments win over environment defaults")
}

func TestParser_EnvBoolFalseIgnored(t *testing.T) {
	p := NewParser(WithEnvLookup(mapLookup(map[string]string{
		"RANGER_SAVEMEM":   "0",
		"RANGER_NOREPLACE": "maybe",
	})))

	res, err := p.ParseWithEnv([]string{"--file", "f", "--depvarname", "y"})
	require.Nil(t, err)
	assert.False(t, res.Config.SaveMemory, "a false-valued boolean variable does not set the flag")
	assert.True(t, res.Config.Replace, "an unparsable boolean variable is ignored")
}

func TestParser_EnvNeverRequestsInfo(t *testing.T) {
	p := NewParser(WithEnvLookup(mapLookup(map[string]string{
		"RANGER_HELP":    "1",
		"RANGER_VERSION": "1",
	})))

	res, err := p.ParseWithEnv([]string{"--file", "f", "--depvarname", "y"})
	require.Nil(t, err)
	assert.Equal(t, NoInfoRequest, res.Info, "informational options cannot come from the environment")
	assert.NotNil(t, res.Config)
}

func TestParser_PlainParseIgnoresEnv(t *testing.T) {
	p := NewParser(WithEnvLookup(mapLookup(map[string]string{
		"RANGER_NTREE": "100",
	})))

	res, err := p.Parse([]string{"--file", "f", "--depvarname", "y"})
	require.Nil(t, err)
	assert.Equal(t, DefaultNumTrees, res.Config.NumTrees, "Parse never consults the environment")
}

func TestParser_EnvInvalidValueFails(t *testing.T) {
	p := NewParser(WithEnvLookup(mapLookup(map[string]string{
		"RANGER_FRACTION": "2",
	})))

	_, err := p.ParseWithEnv([]string{"--file", "f", "--depvarname", "y"})
	assert.NotNil(t, err, "environment values pass through the same coercers as arguments")
}
