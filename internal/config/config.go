// Package config loads educontent settings from defaults, an optional YAML
// file, EDUCONTENT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"github.com/abhisek/educontent/internal/content"
	"github.com/abhisek/educontent/internal/llm"
)

// Config holds all application configuration.
type Config struct {
	LLM      llm.Config     `mapstructure:"llm"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// OutputConfig controls where envelopes are written.
type OutputConfig struct {
	Dir        string `mapstructure:"dir"`
	MCQFile    string `mapstructure:"mcq_file" validate:"required"`
	LessonFile string `mapstructure:"lesson_file" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Mode  string `mapstructure:"mode" validate:"oneof=dev prod"`
}

// DefaultsConfig holds the request parameters used when a command is run
// without explicit flags.
type DefaultsConfig struct {
	Topic        string   `mapstructure:"topic" validate:"required"`
	NumQuestions int      `mapstructure:"num_questions" validate:"gte=1,lte=50"`
	Difficulty   string   `mapstructure:"difficulty" validate:"oneof=easy medium hard"`
	Subject      string   `mapstructure:"subject" validate:"required"`
	Duration     string   `mapstructure:"duration" validate:"required"`
	GradeLevel   string   `mapstructure:"grade_level" validate:"required"`
	Objectives   []string `mapstructure:"objectives" validate:"dive,required"`
}

// Default returns the built-in configuration.
func Default() Config {
	lc := llm.DefaultConfig()
	lc.Provider = ""

	return Config{
		LLM: lc,
		Output: OutputConfig{
			Dir:        ".",
			MCQFile:    "sample_mcqs.json",
			LessonFile: "sample_lesson_plan.json",
		},
		Log: LogConfig{
			Level: "info",
			Mode:  "dev",
		},
		Defaults: DefaultsConfig{
			Topic:        content.DefaultTopic,
			NumQuestions: content.DefaultNumQuestions,
			Difficulty:   content.DefaultDifficulty,
			Subject:      content.DefaultTopic,
			Duration:     content.DefaultDuration,
			GradeLevel:   content.DefaultGradeLevel,
			Objectives:   append([]string(nil), content.DefaultObjectives...),
		},
	}
}
