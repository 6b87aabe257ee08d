package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_GetString(t *testing.T) {
	manager := NewManager()
	t.Setenv("SHELLFOLIO_TEST_KEY", "test_value")

	value, err := manager.GetString("SHELLFOLIO_TEST_KEY")
	assert.NoError(t, err)
	assert.Equal(t, "test_value", value)

	_, err = manager.GetString("SHELLFOLIO_NON_EXISTENT_KEY")
	assert.Error(t, err)
}

func TestManager_GetStringWithDefault(t *testing.T) {
	manager := NewManager()
	t.Setenv("SHELLFOLIO_TEST_KEY", "test_value")

	assert.Equal(t, "test_value", manager.GetStringWithDefault("SHELLFOLIO_TEST_KEY", "default_value"))
	assert.Equal(t, "default_value", manager.GetStringWithDefault("SHELLFOLIO_NON_EXISTENT_KEY", "default_value"))
}

func TestManager_RequireString(t *testing.T) {
	manager := NewManager()
	t.Setenv("SHELLFOLIO_TEST_KEY", "test_value")

	assert.Equal(t, "test_value", manager.RequireString("SHELLFOLIO_TEST_KEY"))
	assert.Panics(t, func() {
		manager.RequireString("SHELLFOLIO_NON_EXISTENT_KEY")
	})
}

func TestManager_GetInt(t *testing.T) {
	manager := NewManager()
	t.Setenv("SHELLFOLIO_TEST_INT", "42")
	t.Setenv("SHELLFOLIO_TEST_BAD_INT", "forty-two")

	value, err := manager.GetInt("SHELLFOLIO_TEST_INT")
	assert.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = manager.GetInt("SHELLFOLIO_TEST_BAD_INT")
	assert.ErrorContains(t, err, "invalid integer value")

	assert.Equal(t, 7, manager.GetIntWithDefault("SHELLFOLIO_TEST_BAD_INT", 7))
	assert.Equal(t, 7, manager.GetIntWithDefault("SHELLFOLIO_NON_EXISTENT_INT", 7))
	assert.Equal(t, 42, manager.GetIntWithDefault("SHELLFOLIO_TEST_INT", 7))
}

func TestManager_GetBoolWithDefault(t *testing.T) {
	manager := NewManager()
	t.Setenv("SHELLFOLIO_TEST_BOOL_TRUE", "true")
	t.Setenv("SHELLFOLIO_TEST_BOOL_FALSE", "false")
	t.Setenv("SHELLFOLIO_TEST_BOOL_INVALID", "not-a-bool")

	assert.True(t, manager.GetBoolWithDefault("SHELLFOLIO_TEST_BOOL_TRUE", false))
	assert.False(t, manager.GetBoolWithDefault("SHELLFOLIO_TEST_BOOL_FALSE", true))
	assert.True(t, manager.GetBoolWithDefault("SHELLFOLIO_NON_EXISTENT_BOOL", true))
	assert.True(t, manager.GetBoolWithDefault("SHELLFOLIO_TEST_BOOL_INVALID", true))
}
