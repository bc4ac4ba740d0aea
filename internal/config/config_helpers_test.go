package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset", "", false, 42},
		{"valid", "100", true, 100},
		{"invalid", "not-a-number", true, 42},
		{"negative", "-10", true, -10},
		{"zero", "0", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("TEST_INT_VAR")
			if tt.set {
				t.Setenv("TEST_INT_VAR", tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DUR_VAR", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DUR_VAR", time.Minute))

	t.Setenv("TEST_DUR_VAR", "ninety")
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DUR_VAR", time.Minute))
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT_VAR", "0.5")
	assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT_VAR", 1))

	t.Setenv("TEST_FLOAT_VAR", "half")
	assert.Equal(t, 1.0, getEnvAsFloat("TEST_FLOAT_VAR", 1))
}

func TestGetEnvAsTime(t *testing.T) {
	def := time.Unix(0, 0).UTC()

	os.Unsetenv("TEST_TIME_VAR")
	got, err := getEnvAsTime("TEST_TIME_VAR", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	t.Setenv("TEST_TIME_VAR", "2025-06-01T00:00:00Z")
	got, err = getEnvAsTime("TEST_TIME_VAR", def)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)

	t.Setenv("TEST_TIME_VAR", "June")
	_, err = getEnvAsTime("TEST_TIME_VAR", def)
	assert.Error(t, err)
}

func TestGetEnv_EmptyValueIsKept(t *testing.T) {
	t.Setenv("TEST_STR_VAR", "")
	assert.Equal(t, "", getEnv("TEST_STR_VAR", "fallback"))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST", " 10.0.0.1, ,10.0.0.2,")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList("TEST_LIST"))

	t.Setenv("TEST_LIST", "")
	assert.Nil(t, getEnvAsList("TEST_LIST"))
}
