// Package envvar provides typed lookups of environment variables, used to source configuration defaults.
package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/couchbase/tools-pq/log"
)

// GetInt returns the int value of the environmental variable varName if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.Atoi(strings.TrimSpace(env))
	if err != nil {
		log.Warnf("(Env) Ignoring '%s' which is not an integer: %v", varName, err)
		return 0, false
	}

	return val, true
}

// GetBool returns the boolean value of the environmental variable varName  if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		log.Warnf("(Env) Ignoring '%s' which is not a boolean: %v", varName, err)
		return false, false
	}

	return ret, true
}

// GetString returns the value of the environmental variable varName, empty values are treated as unset.
func GetString(varName string) (string, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok || val == "" {
		return "", false
	}

	return val, true
}

// GetLevel returns the log level named by the environmental variable varName if the env var is empty or not a valid
// level it will return 0, false.
func GetLevel(varName string) (log.Level, bool) {
	val, ok := GetString(varName)
	if !ok {
		return 0, false
	}

	level, err := log.ParseLevel(val)
	if err != nil {
		log.Warnf("(Env) Ignoring '%s': %v", varName, err)
		return 0, false
	}

	return level, true
}
