package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/educontent/internal/llm"
)

// EnvPrefix prefixes every environment override, e.g. EDUCONTENT_LOG_LEVEL.
const EnvPrefix = "EDUCONTENT"

// configName is the file looked up in the working directory and in
// $XDG_CONFIG_HOME/educontent when no explicit path is given.
const configName = "educontent"

// flagBindings maps config keys to the persistent flags that override them.
var flagBindings = map[string]string{
	"llm.provider": "provider",
	"output.dir":   "out-dir",
	"log.level":    "log-level",
	"log.mode":     "log-mode",
}

// vendorKeys are read when the EDUCONTENT_ variant of an API key is unset.
var vendorKeys = map[string]string{
	"llm.openai.api_key":     llm.EnvOpenAIKey,
	"llm.anthropic.api_key":  llm.EnvAnthropicKey,
	"llm.gemini.api_key":     llm.EnvGeminiKey,
	"llm.openrouter.api_key": llm.EnvOpenRouterKey,
}

// Load reads configuration. path names an explicit config file and may be
// empty; flags may be nil. Only flags the user actually set override lower
// layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := readFile(v, path); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("llm.provider", EnvPrefix+"_LLM_PROVIDER"); err != nil {
		return nil, fmt.Errorf("binding llm.provider: %w", err)
	}
	for key, vendorEnv := range vendorKeys {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, vendorEnv); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LLM = cfg.LLM.Discover()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.timeout", d.LLM.Timeout)

	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.mcq_file", d.Output.MCQFile)
	v.SetDefault("output.lesson_file", d.Output.LessonFile)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.mode", d.Log.Mode)

	v.SetDefault("defaults.topic", d.Defaults.Topic)
	v.SetDefault("defaults.num_questions", d.Defaults.NumQuestions)
	v.SetDefault("defaults.difficulty", d.Defaults.Difficulty)
	v.SetDefault("defaults.subject", d.Defaults.Subject)
	v.SetDefault("defaults.duration", d.Defaults.Duration)
	v.SetDefault("defaults.grade_level", d.Defaults.GradeLevel)
	v.SetDefault("defaults.objectives", d.Defaults.Objectives)
}

// readFile loads an explicit config file, or searches the default
// locations. A missing file is only an error when path was given.
func readFile(v *viper.Viper, path string) error {
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. A missing API key is not an error
// here: it surfaces later as a provider initialization failure, which the
// pipeline answers with fallback content.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// MCQPath returns the output path for the MCQ envelope.
func (c *Config) MCQPath() string {
	return c.outputPath(c.Output.MCQFile)
}

// LessonPath returns the output path for the lesson plan envelope.
func (c *Config) LessonPath() string {
	return c.outputPath(c.Output.LessonFile)
}

func (c *Config) outputPath(file string) string {
	if filepath.IsAbs(file) || c.Output.Dir == "" {
		return file
	}
	return filepath.Join(c.Output.Dir, file)
}
