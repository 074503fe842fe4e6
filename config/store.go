package config

import (
	"os"
	"path/filepath"

	"github.com/kardolus/reasoning-cli/internal"
	"gopkg.in/yaml.v3"
)

const (
	openAIName            = "openai"
	openAIModel           = "gpt-5-nano"
	openAIURL             = "https://api.openai.com/v1"
	openAIResponsesPath   = "/responses"
	openAIAuthHeader      = "Authorization"
	openAIAuthTokenPrefix = "Bearer "
	openAIEffort          = "medium"
	openAITimeout         = 120
	openAIUserAgent       = "reasoning-cli"
	openAIChatProvider    = "openai"
	openAIThread          = "default"
	openAICommandPrompt   = "[%time] [Q%counter]"
	configFileName        = "config.yaml"
)

//go:generate mockgen -destination=storemocks_test.go -package=config_test github.com/kardolus/reasoning-cli/config Store
type Store interface {
	Read() (Config, error)
	ReadDefaults() Config
	Write(Config) error
}

// Ensure FileIO implements Store interface
var _ Store = &FileIO{}

type FileIO struct {
	configFilePath string
}

func New() *FileIO {
	configPath, _ := getPath()

	return &FileIO{
		configFilePath: configPath,
	}
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) Read() (Config, error) {
	return parseFile(f.configFilePath)
}

func (f *FileIO) ReadDefaults() Config {
	return Config{
		Name:            openAIName,
		Model:           openAIModel,
		URL:             openAIURL,
		ResponsesPath:   openAIResponsesPath,
		AuthHeader:      openAIAuthHeader,
		AuthTokenPrefix: openAIAuthTokenPrefix,
		Effort:          openAIEffort,
		Timeout:         openAITimeout,
		UserAgent:       openAIUserAgent,
		ChatProvider:    openAIChatProvider,
		Thread:          openAIThread,
		CommandPrompt:   openAICommandPrompt,
	}
}

func (f *FileIO) Write(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.configFilePath), 0o700); err != nil {
		return err
	}

	return os.WriteFile(f.configFilePath, data, 0o600)
}

func getPath() (string, error) {
	homeDir, err := internal.GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configFileName), nil
}

func parseFile(fileName string) (Config, error) {
	var result Config

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(buf, &result); err != nil {
		return Config{}, err
	}

	return result, nil
}
