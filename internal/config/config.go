// internal/config/config.go
//
// This package handles configuration and the .roster directory structure.
// Every project that runs the roster CLI gets a .roster/ folder in its root
// holding config.yaml and the logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/roster/internal/employee"
	"github.com/kingrea/roster/internal/logbook"
)

const (
	// RosterDir is the name of the directory we create in each project
	RosterDir = ".roster"

	configFilename     = "config.yaml"
	defaultJournalPath = "logs/journal.log"
	defaultLogLevel    = "info"
)

const defaultProjectConfigYAML = `# roster project configuration
version: 1

# Company seeded at startup. Staff are appended to the roster in the order listed.
company:
  president:
    name: 偉井杉人
    salary: 2500000
  staff:
    - name: 佐藤太郎
      salary: 200000
      division: 営業部
    - name: 鈴木次郎
      salary: 300000
      division: 開発部

logging:
  # Journal path, relative to .roster/
  journal: logs/journal.log
  # Print roster notices on stdout as they happen.
  console: true
  # Minimum journal level: info, warn or error.
  level: info
`

// PresidentSeed declares the president's name and salary.
type PresidentSeed struct {
	Name   string `yaml:"name"`
	Salary int    `yaml:"salary"`
}

// StaffSeed declares one roster entry.
type StaffSeed struct {
	Name     string `yaml:"name"`
	Salary   int    `yaml:"salary"`
	Division string `yaml:"division,omitempty"`
}

// CompanyConfig captures the company seeded at startup.
type CompanyConfig struct {
	President PresidentSeed `yaml:"president"`
	Staff     []StaffSeed   `yaml:"staff"`
}

// LoggingConfig captures where and how roster notices are recorded.
type LoggingConfig struct {
	Journal string `yaml:"journal"`
	Console *bool  `yaml:"console,omitempty"`
	Level   string `yaml:"level"`
}

// ProjectConfig models .roster/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Company CompanyConfig `yaml:"company"`
	Logging LoggingConfig `yaml:"logging"`
}

// Config holds the runtime configuration for the roster CLI.
type Config struct {
	// ProjectDir is the directory the CLI was pointed at
	ProjectDir string

	// RosterProjectDir is ProjectDir/.roster
	RosterProjectDir string

	Project ProjectConfig
}

// InitRosterDir creates the .roster directory structure in the given project
// directory and writes a default config.yaml when none exists.
//
// Structure created:
// .roster/
// ├── config.yaml
// └── logs/
func InitRosterDir(projectDir string) error {
	rosterDir := filepath.Join(projectDir, RosterDir)
	if err := os.MkdirAll(filepath.Join(rosterDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure roster dir: %w", err)
	}
	return ensureProjectConfig(filepath.Join(rosterDir, configFilename))
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:       projectDir,
		RosterProjectDir: filepath.Join(projectDir, RosterDir),
		Project:          defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location for the project config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.RosterProjectDir, configFilename)
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.RosterProjectDir, "logs")
}

// JournalPath returns the absolute path of the roster journal.
func (c *Config) JournalPath() string {
	return c.Project.Logging.Journal
}

// ConsoleNotices reports whether notices should be echoed on stdout.
func (c *Config) ConsoleNotices() bool {
	if c.Project.Logging.Console == nil {
		return true
	}
	return *c.Project.Logging.Console
}

// JournalLevel returns the minimum journal level.
func (c *Config) JournalLevel() logbook.Level {
	level, _ := logbook.ParseLevel(c.Project.Logging.Level)
	return level
}

// BuildCompany creates a company seeded from the company block.
func (c *Config) BuildCompany(opts ...employee.Option) *employee.Company {
	company := employee.New(opts...)
	president := company.President()
	president.SetName(c.Project.Company.President.Name)
	president.SetSalary(c.Project.Company.President.Salary)
	for _, seed := range c.Project.Company.Staff {
		company.Staffs().Append(seed.Staff())
	}
	return company
}

// Staff builds a staff member from the seed.
func (s StaffSeed) Staff() *employee.Staff {
	staff := employee.NewStaff()
	staff.SetName(s.Name)
	staff.SetSalary(s.Salary)
	staff.SetDivision(s.Division)
	return staff
}

func (c *Config) loadProjectConfig() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Project.normalize(c.RosterProjectDir)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.RosterProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Logging: LoggingConfig{
			Journal: defaultJournalPath,
			Level:   defaultLogLevel,
		},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Logging.Journal) == "" {
		pc.Logging.Journal = defaultJournalPath
	}
	if strings.TrimSpace(pc.Logging.Level) == "" {
		pc.Logging.Level = defaultLogLevel
	}
}

// normalize trims config-level strings. Names and divisions are roster data
// and are kept verbatim.
func (pc *ProjectConfig) normalize(base string) {
	pc.Logging.Journal = resolvePath(base, pc.Logging.Journal)
	pc.Logging.Level = strings.ToLower(strings.TrimSpace(pc.Logging.Level))
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, ok := logbook.ParseLevel(pc.Logging.Level); !ok {
		return fmt.Errorf("logging.level must be 'info', 'warn' or 'error'")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, filepath.FromSlash(trimmed)))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}
