package config

type Config struct {
	Name            string            `yaml:"name"`
	APIKey          string            `yaml:"api_key"`
	APIKeyFile      string            `yaml:"api_key_file"`
	Model           string            `yaml:"model"`
	URL             string            `yaml:"url"`
	ResponsesPath   string            `yaml:"responses_path"`
	AuthHeader      string            `yaml:"auth_header"`
	AuthTokenPrefix string            `yaml:"auth_token_prefix"`
	Effort          string            `yaml:"effort"`
	MaxOutputTokens int               `yaml:"max_output_tokens"`
	Timeout         int               `yaml:"timeout"`
	UserAgent       string            `yaml:"user_agent"`
	CustomHeaders   map[string]string `yaml:"custom_headers"`
	SkipTLSVerify   bool              `yaml:"skip_tls_verify"`
	ChatProvider    string            `yaml:"chat_provider"`
	ChatModel       string            `yaml:"chat_model"`
	ChatURL         string            `yaml:"chat_url"`
	Thread          string            `yaml:"thread"`
	OmitHistory     bool              `yaml:"omit_history"`
	CommandPrompt   string            `yaml:"command_prompt"`
	Debug           bool              `yaml:"debug"`
}
