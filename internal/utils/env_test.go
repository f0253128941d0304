package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("AP_TEST_STRING", "value")
	require.Equal(t, "value", GetEnv("AP_TEST_STRING", "def", nil))
	require.Equal(t, "def", GetEnv("AP_TEST_UNSET", "def", nil))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("AP_TEST_INT", " 42 ")
	require.Equal(t, 42, GetEnvAsInt("AP_TEST_INT", 1, nil))
	t.Setenv("AP_TEST_INT", "forty")
	require.Equal(t, 1, GetEnvAsInt("AP_TEST_INT", 1, nil))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("AP_TEST_BOOL", "on")
	require.True(t, GetEnvAsBool("AP_TEST_BOOL", false, nil))
	t.Setenv("AP_TEST_BOOL", "0")
	require.False(t, GetEnvAsBool("AP_TEST_BOOL", true, nil))
	t.Setenv("AP_TEST_BOOL", "maybe")
	require.True(t, GetEnvAsBool("AP_TEST_BOOL", true, nil))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("AP_TEST_LIST", "admin, super_admin,, ")
	require.Equal(t, []string{"admin", "super_admin"}, GetEnvAsList("AP_TEST_LIST", nil, nil))
	t.Setenv("AP_TEST_LIST", " , ")
	require.Equal(t, []string{"x"}, GetEnvAsList("AP_TEST_LIST", []string{"x"}, nil))
}

func TestDisplayValueRedactsSecrets(t *testing.T) {
	require.Equal(t, "[REDACTED]", displayValue("JWT_SECRET_KEY", "abc"))
	require.Equal(t, "[REDACTED]", displayValue("postgres_password", "abc"))
	require.Equal(t, "8080", displayValue("PORT", "8080"))
}
