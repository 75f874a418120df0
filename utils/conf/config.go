package conf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const EnvPrefix = "XRANDOM"

// 随机源
const (
	SourceGlobal = "global"
	SourceSeeded = "seeded"
	SourceCrypto = "crypto"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// 日志格式
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config 命令行配置
type Config struct {
	Start     int    `mapstructure:"start" json:"start"`
	End       int    `mapstructure:"end" json:"end"`
	Count     int    `mapstructure:"count" json:"count"`
	Seed      uint64 `mapstructure:"seed" json:"seed"`
	Source    string `mapstructure:"source" json:"source"`
	Format    string `mapstructure:"format" json:"format"`
	LogLevel  string `mapstructure:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" json:"log_format"`
}

// Validate 校验取值
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		// Min 会跳过零值，区间用 By 自己比较
		validation.Field(&c.End, validation.By(func(interface{}) error {
			if c.End < c.Start {
				return errors.New("must be no less than start")
			}
			return nil
		})),
		validation.Field(&c.Count, validation.Required, validation.Min(1)),
		validation.Field(&c.Source, validation.Required, validation.In(SourceGlobal, SourceSeeded, SourceCrypto)),
		validation.Field(&c.Format, validation.Required, validation.In(FormatText, FormatJSON)),
		validation.Field(&c.LogLevel, validation.Required, validation.In("trace", "debug", "info", "warn", "error", "disabled")),
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatConsole, LogFormatJSON)),
	)
}

// New 返回带默认值和环境变量绑定的 viper 实例
// 环境变量：XRANDOM_START、XRANDOM_LOG_LEVEL ...
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("start", 1)
	v.SetDefault("end", 10)
	v.SetDefault("count", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("source", SourceGlobal)
	v.SetDefault("format", FormatText)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", LogFormatConsole)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfigFile cfgFile 为空时只用默认值和环境变量
func LoadConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}
	return nil
}

// LoadConfigByte 支持 yaml/toml/json 等
func LoadConfigByte(v *viper.Viper, data []byte, filetype string) error {
	v.SetConfigType(filetype)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("read config bytes: %w", err)
	}
	return nil
}

// Decode 解析并校验
func Decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.Source = strings.ToLower(c.Source)
	c.Format = strings.ToLower(c.Format)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// Load 文件 + 环境变量 + 默认值
func Load(cfgFile string) (*Config, error) {
	v := New()
	if err := LoadConfigFile(v, cfgFile); err != nil {
		return nil, err
	}
	return Decode(v)
}

// MustLoad 失败 panic
func MustLoad(cfgFile string) *Config {
	c, err := Load(cfgFile)
	if err != nil {
		panic(fmt.Errorf("MustLoad failed: %w", err))
	}
	return c
}
