// Package config 从YAML文件和环境变量加载表格的默认配置
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gridview"
	"gridview/query"
)

const (
	envPrefix = "GRIDVIEW"

	cfgKeyPageSize        = "page_size"
	cfgKeyPageSizeOptions = "page_size_options"
	cfgKeyIdKeys          = "id_keys"
	cfgKeySearchKeys      = "search_keys"
	cfgKeyThreshold       = "search.threshold"
	cfgKeyShortThreshold  = "search.short_threshold"
	cfgKeyLogLevel        = "log.level"
	cfgKeyLogFormat       = "log.format"
)

type Config struct {
	PageSize        int
	PageSizeOptions []int
	IdKeys          []string
	SearchKeys      []string
	Threshold       float64
	ShortThreshold  float64
	LogLevel        string
	LogFormat       string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(cfgKeyPageSize, gridview.DefaultPageSize)
	v.SetDefault(cfgKeyPageSizeOptions, gridview.DefaultPageSizeOptions)
	v.SetDefault(cfgKeyIdKeys, []string{"id", "_id"})
	v.SetDefault(cfgKeySearchKeys, []string{})
	v.SetDefault(cfgKeyThreshold, query.DefaultThreshold)
	v.SetDefault(cfgKeyShortThreshold, query.DefaultShortThreshold)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")
}

// Load 读取配置。path为空时只使用默认值和环境变量，
// 环境变量形如 GRIDVIEW_PAGE_SIZE、GRIDVIEW_SEARCH_THRESHOLD
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		PageSize:        v.GetInt(cfgKeyPageSize),
		PageSizeOptions: v.GetIntSlice(cfgKeyPageSizeOptions),
		IdKeys:          v.GetStringSlice(cfgKeyIdKeys),
		SearchKeys:      v.GetStringSlice(cfgKeySearchKeys),
		Threshold:       v.GetFloat64(cfgKeyThreshold),
		ShortThreshold:  v.GetFloat64(cfgKeyShortThreshold),
		LogLevel:        v.GetString(cfgKeyLogLevel),
		LogFormat:       v.GetString(cfgKeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	for _, size := range c.PageSizeOptions {
		if size <= 0 {
			return fmt.Errorf("page_size_options must be positive, got %d", size)
		}
	}
	if c.Threshold < 0 || c.Threshold > 1 || c.ShortThreshold < 0 || c.ShortThreshold > 1 {
		return fmt.Errorf("search thresholds must be within [0,1]")
	}
	return nil
}

// TableOptions 把配置转换为表格选项，列、筛选和操作由调用方补充
func (c *Config) TableOptions() gridview.Options {
	opts := gridview.DefaultOptions()
	opts.PageSize = c.PageSize
	opts.PageSizeOptions = c.PageSizeOptions
	opts.IdKeys = c.IdKeys
	opts.SearchKeys = c.SearchKeys
	opts.Search.Threshold = c.Threshold
	opts.Search.ShortThreshold = c.ShortThreshold
	return opts
}
