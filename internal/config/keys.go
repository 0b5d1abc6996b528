package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys returns every dotted key accepted by Get and Set, in the order
// `config list` displays them.
func Keys() []string {
	return []string{
		"gemini.api_key",
		"gemini.base_url",
		"gemini.model",
		"mouser.api_key",
		"digikey.client_id",
		"digikey.client_secret",
		"digikey.sandbox",
		"cache.dir",
		"logging.level",
		"logging.format",
		"logging.file",
	}
}

// SecretKey reports whether a key holds a credential that should be redacted
// in listings.
func SecretKey(key string) bool {
	switch key {
	case "gemini.api_key", "mouser.api_key", "digikey.client_secret":
		return true
	}
	return false
}

// Get returns the value stored at a dotted key such as "gemini.model".
// Booleans are rendered with strconv.FormatBool.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "gemini.api_key":
		return c.Gemini.APIKey, nil
	case "gemini.base_url":
		return c.Gemini.BaseURL, nil
	case "gemini.model":
		return c.Gemini.Model, nil
	case "mouser.api_key":
		return c.Mouser.APIKey, nil
	case "digikey.client_id":
		return c.Digikey.ClientID, nil
	case "digikey.client_secret":
		return c.Digikey.ClientSecret, nil
	case "digikey.sandbox":
		return strconv.FormatBool(c.Digikey.Sandbox), nil
	case "cache.dir":
		return c.Cache.Dir, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	}
	return "", unknownKeyError(key)
}

// Set stores value at a dotted key. Boolean keys accept the forms
// strconv.ParseBool understands.
func (c *Config) Set(key, value string) error {
	switch key {
	case "gemini.api_key":
		c.Gemini.APIKey = value
	case "gemini.base_url":
		c.Gemini.BaseURL = value
	case "gemini.model":
		c.Gemini.Model = value
	case "mouser.api_key":
		c.Mouser.APIKey = value
	case "digikey.client_id":
		c.Digikey.ClientID = value
	case "digikey.client_secret":
		c.Digikey.ClientSecret = value
	case "digikey.sandbox":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		c.Digikey.Sandbox = parsed
	case "cache.dir":
		c.Cache.Dir = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	default:
		return unknownKeyError(key)
	}
	return nil
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
}
