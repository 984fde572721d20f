// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// OSCSettings - адрес внешнего аудио-приложения
type OSCSettings struct {
	Host     string `yaml:"host"`
	OutPort  int    `yaml:"out_port"`
	InPort   int    `yaml:"in_port"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// AudioSettings - запуск внешнего аудио-приложения
type AudioSettings struct {
	AppPath  string `yaml:"app_path"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Settings - настройки, которые можно менять без пересборки
type Settings struct {
	EasyMode         bool          `yaml:"easy_mode"`
	PlayerInvincible bool          `yaml:"player_invincible"`
	NoEnemies        bool          `yaml:"no_enemies,omitempty"`
	Seed             int64         `yaml:"seed,omitempty"`
	OSC              OSCSettings   `yaml:"osc"`
	Audio            AudioSettings `yaml:"audio"`
	TuningPath       string        `yaml:"tuning_path,omitempty"`
	AssetDir         string        `yaml:"asset_dir,omitempty"`
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		OSC: OSCSettings{
			Host:    OSCHost,
			OutPort: OSCOutgoingPort,
			InPort:  OSCIncomingPort,
		},
		Audio: AudioSettings{AppPath: AudioAppPath},
	}
}

// LoadSettings читает YAML-файл настроек. Отсутствующий файл - не ошибка.
// Переменная окружения DISABLE_MAX=1 отключает запуск аудио-приложения.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	s.applyEnv()
	s.fillDefaults()
	return s, nil
}

// Save записывает настройки обратно в файл
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Settings) applyEnv() {
	if v, ok := os.LookupEnv("DISABLE_MAX"); ok {
		if n, err := strconv.Atoi(v); err == nil && n == 1 {
			s.Audio.Disabled = true
		}
	}
}

func (s *Settings) fillDefaults() {
	if s.OSC.Host == "" {
		s.OSC.Host = OSCHost
	}
	if s.OSC.OutPort == 0 {
		s.OSC.OutPort = OSCOutgoingPort
	}
	if s.OSC.InPort == 0 {
		s.OSC.InPort = OSCIncomingPort
	}
	if s.Audio.AppPath == "" {
		s.Audio.AppPath = AudioAppPath
	}
}

func (s Settings) String() string {
	return fmt.Sprintf("Settings[ Easy Mode: %v | Player Invincible: %v ]", s.EasyMode, s.PlayerInvincible)
}
