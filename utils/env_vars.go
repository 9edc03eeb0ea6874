package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type envTypes interface {
	string | int | bool | float64
}

// GetEnv reads an environment variable and converts it to T, falling back to
// defaultValue when the variable is unset or empty.
func GetEnv[T envTypes](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

// GetRequiredEnv reads an environment variable and converts it to T,
// exiting the program when the variable is unset or empty.
func GetRequiredEnv[T envTypes](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

func parseEnv[T envTypes](envVar, envValue string) (T, error) {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return out, fmt.Errorf(
				"environment variable %s is not valid: '%s' is not an integer", envVar, envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return out, fmt.Errorf(
				"environment variable %s is not valid: '%s' is not a boolean", envVar, envValue)
		}
		*ptr = boolValue
	case *float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return out, fmt.Errorf(
				"environment variable %s is not valid: '%s' is not a float", envVar, envValue)
		}
		*ptr = floatValue
	}
	return out, nil
}
