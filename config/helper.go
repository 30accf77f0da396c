package config

import (
	"os"
	"strings"
)

// getListEnv splits a comma separated variable, dropping blanks.
func getListEnv(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
