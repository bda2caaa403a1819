package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/ledgerctl/internal/simulator"
	"github.com/danmuck/ledgerctl/internal/transport"
)

// CLIConfig carries ledgerctl transport defaults. Flags override anything
// set here.
type CLIConfig struct {
	TCP TCPConfig `toml:"tcp"`
}

type TCPConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// SimulatorConfig configures the speculosd daemon.
type SimulatorConfig struct {
	Addr      string            `toml:"addr"`
	AdminAddr string            `toml:"admin_addr"`
	Profile   simulator.Profile `toml:"profile"`
}

// LoadCLIConfig reads path and fills in simulator defaults for anything
// unset. An empty path returns pure defaults.
func LoadCLIConfig(path string) (CLIConfig, error) {
	var cfg CLIConfig
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return CLIConfig{}, err
		}
	}
	defaults := transport.DefaultTCPOptions()
	if cfg.TCP.Host == "" {
		cfg.TCP.Host = defaults.Host
	}
	if cfg.TCP.Port == 0 {
		cfg.TCP.Port = defaults.Port
	}
	if cfg.TCP.TimeoutMS == 0 {
		cfg.TCP.TimeoutMS = int(defaults.Timeout / time.Millisecond)
	}
	if err := ValidateCLIConfig(cfg); err != nil {
		return CLIConfig{}, err
	}
	return cfg, nil
}

// TCPOptions converts the config into transport dial options.
func (c CLIConfig) TCPOptions() transport.TCPOptions {
	return transport.TCPOptions{
		Host:    c.TCP.Host,
		Port:    c.TCP.Port,
		Timeout: time.Duration(c.TCP.TimeoutMS) * time.Millisecond,
	}
}

// LoadSimulatorConfig reads path, defaulting to a local listener and the
// stock device profile.
func LoadSimulatorConfig(path string) (SimulatorConfig, error) {
	cfg := SimulatorConfig{Profile: simulator.DefaultProfile()}
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return SimulatorConfig{}, err
		}
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:1237"
	}
	if cfg.AdminAddr == "" {
		cfg.AdminAddr = "127.0.0.1:9310"
	}
	if err := ValidateSimulatorConfig(cfg); err != nil {
		return SimulatorConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateCLIConfig(cfg CLIConfig) error {
	if strings.TrimSpace(cfg.TCP.Host) == "" {
		return fmt.Errorf("tcp config missing host")
	}
	if cfg.TCP.Port <= 0 || cfg.TCP.Port > 65535 {
		return fmt.Errorf("tcp config port out of range: %d", cfg.TCP.Port)
	}
	if cfg.TCP.TimeoutMS < 0 {
		return fmt.Errorf("tcp config timeout must not be negative")
	}
	return nil
}

func ValidateSimulatorConfig(cfg SimulatorConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("simulator config missing addr")
	}
	if strings.TrimSpace(cfg.Profile.AppName) == "" {
		return fmt.Errorf("simulator profile missing app name")
	}
	return nil
}
