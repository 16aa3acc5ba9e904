package db

import "fmt"

// DBConfigFromYamlObj builds the connection config from the parsed yaml block.
// Credentials are expected to be already overridden from env vars by the caller.
func DBConfigFromYamlObj(yamlObj DBConfigYaml) DBConfig {
	uri := yamlObj.ConnectionStr
	if yamlObj.Username != "" {
		uri = fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)
	} else {
		uri = fmt.Sprintf(`mongodb%s://%s`, yamlObj.ConnectionPrefix, yamlObj.ConnectionStr)
	}

	timeout := yamlObj.Timeout
	if timeout <= 0 {
		timeout = 30
	}
	idleConnTimeout := yamlObj.IdleConnTimeout
	if idleConnTimeout <= 0 {
		idleConnTimeout = 45
	}
	maxPoolSize := yamlObj.MaxPoolSize
	if maxPoolSize <= 0 {
		maxPoolSize = 8
	}

	return DBConfig{
		URI:             uri,
		Timeout:         timeout,
		IdleConnTimeout: idleConnTimeout,
		MaxPoolSize:     uint64(maxPoolSize),
		DBNamePrefix:    yamlObj.DBNamePrefix,
	}
}
