package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/moyu-x/files-mover/internal"
)

type Config struct {
	Mover struct {
		Num        int
		Prefix     string
		StartIndex int `mapstructure:"start_index"`
		Sort       string
		Reverse    bool
	}
	Logging struct {
		Level string
		File  string
	}
}

var (
	cfg  Config
	used string
)

// Load 读取配置文件和 FILES_MOVER_ 开头的环境变量，找不到配置文件时使用默认值
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("$HOME/.files-mover")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/files-mover")

	v.SetEnvPrefix("FILES_MOVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mover.num", internal.DefaultFilesPerDir)
	v.SetDefault("mover.prefix", internal.DefaultFolderPrefix)
	v.SetDefault("mover.start_index", internal.DefaultStartIndex)
	v.SetDefault("mover.sort", internal.DefaultSort)
	v.SetDefault("mover.reverse", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	cfg = c
	used = v.ConfigFileUsed()
	return &cfg, nil
}

func Get() *Config {
	return &cfg
}

// FileUsed 返回实际读取的配置文件路径，未读取时为空
func FileUsed() string {
	return used
}
