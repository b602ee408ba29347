package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Api      ApiConf      `mapstructure:"api"`
	Claim    ClaimConf    `mapstructure:"claim"`
	Simulate SimulateConf `mapstructure:"simulate"`
	Export   ExportConf   `mapstructure:"export"`
	Log      LogConf      `mapstructure:"log"`
}

// ApiConf 模拟发放服务监听配置
type ApiConf struct {
	Port string `mapstructure:"port"`
}

// ClaimConf configures the protocol client. An empty Endpoint selects
// simulation mode; that is a supported demo setup, not a config error.
type ClaimConf struct {
	Endpoint  string `mapstructure:"endpoint"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// SimulateConf holds the offline draw knobs. The defaults mirror the
// constants the production frontend shipped with.
type SimulateConf struct {
	DelayMs              int     `mapstructure:"delay_ms"`
	AlreadyClaimedRate   float64 `mapstructure:"already_claimed_rate"`
	AlreadyClaimedAmount int64   `mapstructure:"already_claimed_amount"`
	Denominations        []int64 `mapstructure:"denominations"`
	Seed                 int64   `mapstructure:"seed"`
}

type ExportConf struct {
	Dir   string `mapstructure:"dir"`
	Scale int    `mapstructure:"scale"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Api: ApiConf{Port: ":9000"},
		Claim: ClaimConf{
			TimeoutMs: 10000,
		},
		Simulate: SimulateConf{
			DelayMs:              1500,
			AlreadyClaimedRate:   0.2,
			AlreadyClaimedAmount: 500000,
			Denominations:        []int64{100000, 200000, 500000},
		},
		Export: ExportConf{Dir: "./receipts", Scale: 3},
		Log:    LogConf{Level: "info"},
	}
}

// UnmarshalConfig 读取toml配置文件
func UnmarshalConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	c := DefaultConfig()
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}
