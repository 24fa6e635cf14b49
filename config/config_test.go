package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvModel, "")
	t.Setenv(EnvLanguage, "")
	t.Setenv(EnvTemperature, "")

	model, language, temperature, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, model)
	assert.Equal(t, DefaultLanguage, language)
	assert.Equal(t, DefaultTemperature, temperature)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvModel, "gpt-3.5-turbo")
	t.Setenv(EnvLanguage, "English")
	t.Setenv(EnvTemperature, "0.7")

	model, language, temperature, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", model)
	assert.Equal(t, "English", language)
	assert.Equal(t, 0.7, temperature)
}

func TestFromEnv_BadTemperature(t *testing.T) {
	t.Setenv(EnvTemperature, "warm")
	_, _, _, err := FromEnv()
	assert.Error(t, err)

	t.Setenv(EnvTemperature, "2.5")
	_, _, _, err = FromEnv()
	assert.Error(t, err)
}

func TestValidateTemperature(t *testing.T) {
	assert.NoError(t, ValidateTemperature(0.0))
	assert.NoError(t, ValidateTemperature(0.1))
	assert.NoError(t, ValidateTemperature(2.0))
	assert.Error(t, ValidateTemperature(-0.1))
	assert.Error(t, ValidateTemperature(2.1))
}
