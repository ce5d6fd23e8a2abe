package config

import (
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR_NAME} patterns in config values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// EnvReference returns the ${VAR_NAME} form of a variable name
func EnvReference(name string) string {
	return "${" + name + "}"
}

// GenerateEnvVarName generates the conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _URL.
// Examples: Goerli -> GOERLI_URL, ETH -> ETH_URL, base-sepolia -> BASE_SEPOLIA_URL
func GenerateEnvVarName(networkName string) string {
	return envVarPrefix(networkName) + "URL"
}

// envVarPrefix returns the prefix shared by a network's variables
func envVarPrefix(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_"
}
