package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	opts, err := fromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestFromLookup_Overrides(t *testing.T) {
	opts, err := fromLookup(lookupFrom(map[string]string{
		EnvServerURL:     "http://voice.local:8080",
		EnvLineType:      "ma",
		EnvMinAudioBytes: "0",
		EnvTimeout:       "30s",
		EnvDiscardStale:  "true",
		EnvPlayer:        " ffplay -nodisp ",
		EnvLanguage:      "en",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://voice.local:8080", opts.ServerURL)
	assert.Equal(t, "ma", string(opts.DefaultLineType))
	assert.Equal(t, MinAudioBytesLowerBound, opts.MinAudioBytes)
	assert.Equal(t, 30*time.Second, opts.RequestTimeout)
	assert.True(t, opts.DiscardStale)
	assert.Equal(t, "ffplay -nodisp", opts.PlayerCommand)
	assert.Equal(t, "en", opts.Language)

	for _, field := range []Field{FieldServerURL, FieldLineType, FieldMinAudioBytes, FieldTimeout,
		FieldDiscardStale, FieldPlayer, FieldLanguage} {
		assert.True(t, opts.IsExplicit(field), field)
	}
}

func TestFromLookup_ExplicitOnlyWhenSupplied(t *testing.T) {
	opts, err := fromLookup(lookupFrom(map[string]string{EnvLanguage: DefaultLanguage}))
	require.NoError(t, err)

	assert.True(t, opts.IsExplicit(FieldLanguage), "a value equal to the default is still explicit")
	assert.False(t, opts.IsExplicit(FieldServerURL))
	assert.False(t, opts.IsExplicit(FieldPlayer))
}

func TestFromLookup_InvalidValues(t *testing.T) {
	for _, key := range []string{EnvMinAudioBytes, EnvTimeout, EnvDiscardStale} {
		_, err := fromLookup(lookupFrom(map[string]string{key: "not-a-value"}))
		assert.Error(t, err, key)
	}
}

func TestFromEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("COLOCK_LINE_TYPE=za\n"), 0600))

	t.Setenv(EnvLineType, "")
	os.Unsetenv(EnvLineType)

	opts, err := FromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "za", string(opts.DefaultLineType))

	_, err = FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
