package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const redacted = "<redacted>"

type Manager struct {
	configStore Store
	Config      Config
}

// NewManager starts from the store defaults and overlays every non-zero value
// from the user's config file. A missing or unreadable file keeps the defaults.
func NewManager(cs Store) *Manager {
	configuration := cs.ReadDefaults()

	userConfig, err := cs.Read()
	if err == nil {
		configuration = replaceByConfigFile(configuration, userConfig)
	}

	return &Manager{configStore: cs, Config: configuration}
}

// WithEnvironment overlays <NAME>_<YAML_TAG> environment variables,
// e.g. OPENAI_API_KEY or OPENAI_MODEL.
func (c *Manager) WithEnvironment() *Manager {
	c.Config = replaceByEnvironment(c.Config)
	return c
}

func (c *Manager) APIKeyEnvVarName() string {
	return strings.ToUpper(c.Config.Name) + "_" + "API_KEY"
}

// ResolveAPIKey loads the key from api_key_file when no key was configured
// directly.
func (c *Manager) ResolveAPIKey() error {
	if c.Config.APIKey != "" || c.Config.APIKeyFile == "" {
		return nil
	}

	key, err := ReadAPIKeyFile(c.Config.APIKeyFile)
	if err != nil {
		return err
	}
	c.Config.APIKey = key

	return nil
}

// ShowConfig serializes the current configuration to a YAML string with the
// API key redacted.
func (c *Manager) ShowConfig() (string, error) {
	shown := c.Config
	if shown.APIKey != "" {
		shown.APIKey = redacted
	}

	data, err := yaml.Marshal(shown)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Save writes the current configuration back through the store.
func (c *Manager) Save() error {
	return c.configStore.Write(c.Config)
}

func replaceByConfigFile(defaultConfig, userConfig Config) Config {
	t := reflect.TypeOf(defaultConfig)
	vDefault := reflect.ValueOf(&defaultConfig).Elem()
	vUser := reflect.ValueOf(userConfig)

	for i := 0; i < t.NumField(); i++ {
		defaultField := vDefault.Field(i)
		userField := vUser.Field(i)

		switch defaultField.Kind() {
		case reflect.String:
			if userStr := userField.String(); userStr != "" {
				defaultField.SetString(userStr)
			}
		case reflect.Int:
			if userInt := int(userField.Int()); userInt != 0 {
				defaultField.SetInt(int64(userInt))
			}
		case reflect.Bool:
			defaultField.SetBool(userField.Bool())
		case reflect.Map:
			if userField.Len() > 0 {
				defaultField.Set(userField)
			}
		}
	}

	return defaultConfig
}

func replaceByEnvironment(configuration Config) Config {
	t := reflect.TypeOf(configuration)
	v := reflect.ValueOf(&configuration).Elem()

	prefix := strings.ToUpper(configuration.Name) + "_"
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "name" {
			continue
		}

		if value := os.Getenv(prefix + strings.ToUpper(tag)); value != "" {
			field := v.Field(i)

			switch field.Kind() {
			case reflect.String:
				field.SetString(value)
			case reflect.Int:
				intValue, _ := strconv.Atoi(value)
				field.SetInt(int64(intValue))
			case reflect.Bool:
				boolValue, _ := strconv.ParseBool(value)
				field.SetBool(boolValue)
			}
		}
	}

	return configuration
}
