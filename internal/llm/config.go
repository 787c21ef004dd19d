package llm

import (
	"os"
	"strconv"
)

// Task identifies the kind of advisor call being made.
type Task string

const (
	TaskAdvise      Task = "advise"
	TaskFeasibility Task = "feasibility"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Model       string // overrides Config.Model if set
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides Config.TimeoutMs if > 0
}

// Config holds all configuration for the advisor subsystem.
type Config struct {
	// BaseURL is the generation endpoint. Empty disables the advisor;
	// every pipeline then takes its deterministic path.
	BaseURL   string
	Model     string
	TimeoutMs int
	LogCalls  bool
	Tasks     map[Task]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The advisor is
// disabled until an endpoint is configured.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "",
		Model:     "llama3.2",
		TimeoutMs: 20000,
		LogCalls:  false,
		Tasks: map[Task]TaskConfig{
			TaskAdvise:      {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 45000},
			TaskFeasibility: {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads advisor configuration from environment variables,
// falling back to defaults for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FFCS_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FFCS_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FFCS_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FFCS_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FFCS_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			for task, tc := range cfg.Tasks {
				tc.Temperature = f
				cfg.Tasks[task] = tc
			}
		}
	}
	if v := os.Getenv("FFCS_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			for task, tc := range cfg.Tasks {
				tc.MaxTokens = n
				cfg.Tasks[task] = tc
			}
		}
	}

	applyTaskEnv(&cfg, TaskAdvise, "FFCS_LLM_ADVISE")
	applyTaskEnv(&cfg, TaskFeasibility, "FFCS_LLM_FEASIBILITY")

	return cfg
}

// Enabled reports whether an advisor endpoint is configured.
func (c Config) Enabled() bool {
	return c.BaseURL != ""
}

// TaskTimeout returns the effective timeout for a task, preferring the
// task-specific value over the global one.
func (c Config) TaskTimeout(task Task) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// TaskModel returns the effective model for a task, preferring the
// task-specific value over the global one.
func (c Config) TaskModel(task Task) string {
	if tc, ok := c.Tasks[task]; ok && tc.Model != "" {
		return tc.Model
	}
	return c.Model
}

func applyTaskEnv(cfg *Config, task Task, prefix string) {
	tc := cfg.Tasks[task]
	if v := os.Getenv(prefix + "_MODEL"); v != "" {
		tc.Model = v
	}
	if v := os.Getenv(prefix + "_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tc.TimeoutMs = n
		}
	}
	if v := os.Getenv(prefix + "_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			tc.Temperature = f
		}
	}
	if v := os.Getenv(prefix + "_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tc.MaxTokens = n
		}
	}
	cfg.Tasks[task] = tc
}
