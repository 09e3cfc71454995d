package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/couchbase/tools-pq/log"
)

type envTest[T any] struct {
	name         string
	expectedVal  T
	expectedBool bool
	envValue     *string
}

func str(s string) *string {
	return &s
}

func runEnvTests[T any](t *testing.T, tests []envTest[T], get func(varName string) (T, bool)) {
	const envName = "CB_TEST_ENVVAR"

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.envValue != nil {
				t.Setenv(envName, *test.envValue)
			}

			val, ok := get(envName)

			assert.Equal(t, test.expectedBool, ok)
			assert.Equal(t, test.expectedVal, val)
		})
	}
}

func TestGetInt(t *testing.T) {
	runEnvTests(t, []envTest[int]{
		{name: "ValidEnv", expectedVal: 10, expectedBool: true, envValue: str("10")},
		{name: "Padded", expectedVal: 7, expectedBool: true, envValue: str(" 7 ")},
		{name: "EnvNotSet"},
		{name: "EnvIsNotAnInt", envValue: str("this is not an int")},
	}, GetInt)
}

func TestGetBool(t *testing.T) {
	runEnvTests(t, []envTest[bool]{
		{name: "True", expectedVal: true, expectedBool: true, envValue: str("true")},
		{name: "False", expectedBool: true, envValue: str("0")},
		{name: "EnvNotSet"},
		{name: "EnvIsNotABool", envValue: str("maybe")},
	}, GetBool)
}

func TestGetString(t *testing.T) {
	runEnvTests(t, []envTest[string]{
		{name: "Set", expectedVal: "value", expectedBool: true, envValue: str("value")},
		{name: "Empty", envValue: str("")},
		{name: "EnvNotSet"},
	}, GetString)
}

func TestGetLevel(t *testing.T) {
	runEnvTests(t, []envTest[log.Level]{
		{name: "Debug", expectedVal: log.LevelDebug, expectedBool: true, envValue: str("debug")},
		{name: "Warning", expectedVal: log.LevelWarning, expectedBool: true, envValue: str("WARN")},
		{name: "EnvNotSet"},
		{name: "Invalid", envValue: str("loud")},
	}, GetLevel)
}
