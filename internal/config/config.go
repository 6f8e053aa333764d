package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	ModeTUI      = "tui"
	ModeSelfPlay = "selfplay"

	xdgConfigFile = "reversi/config.yml"
)

var (
	ErrUnknownMode        = errors.New("unknown mode")
	ErrInvalidHumanPlayer = errors.New("human-player must be 1 or 2")
)

type Config struct {
	LogLevel    string        `yaml:"log-level" env:"REVERSI_LOG_LEVEL" env-default:"info"`
	LogFile     string        `yaml:"log-file" env:"REVERSI_LOG_FILE" env-default:""`
	Mode        string        `yaml:"mode" env:"REVERSI_MODE" env-default:"tui"`
	ShowHints   bool          `yaml:"show-hints" env:"REVERSI_SHOW_HINTS"`
	HumanPlayer int           `yaml:"human-player" env:"REVERSI_HUMAN_PLAYER" env-default:"1"`
	Seed        uint64        `yaml:"seed" env:"REVERSI_SEED" env-default:"0"`
	BotDelay    time.Duration `yaml:"bot-delay" env:"REVERSI_BOT_DELAY"`
	SelfPlay    SelfPlay      `yaml:"selfplay"`
}

type SelfPlay struct {
	Games int `yaml:"games" env:"REVERSI_SELFPLAY_GAMES"`
}

// MustLoad - load all configurations from the file at path, or from the environment
// when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := defaults()

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// defaults holds the settings whose zero value is a valid choice. env-default would
// overwrite an explicit false or 0 from the file, so they are set before reading.
func defaults() *Config {
	return &Config{
		ShowHints: true,
		BotDelay:  500 * time.Millisecond,
		SelfPlay: SelfPlay{
			Games: 100,
		},
	}
}

// Locate returns the config file to load: the user's XDG config file if present,
// then fallback if it exists, otherwise an empty path.
func Locate(fallback string) string {
	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}

	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}

	return ""
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeTUI, ModeSelfPlay:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.HumanPlayer != 1 && that.HumanPlayer != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidHumanPlayer, that.HumanPlayer)
	}

	return nil
}

func (that *Config) Human() entity.PlayerID {
	if that.HumanPlayer == 2 {
		return entity.Player2
	}
	return entity.Player1
}
