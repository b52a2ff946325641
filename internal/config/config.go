package config

import "github.com/spf13/viper"

type Config struct {
	Server ServerConfig
	Asaas  AsaasConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port int
}

type AsaasConfig struct {
	APIURL string
	APIKey string
	// DispatcherWallet receives the split transfer on each charge.
	// Empty disables splitting (sandbox without subaccounts).
	DispatcherWallet string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("ASAAS_API_URL", "https://sandbox.asaas.com/api/v3")
	viper.SetDefault("ASAAS_API_KEY", "")
	viper.SetDefault("ASAAS_DISPATCHER_WALLET", "")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Asaas: AsaasConfig{
			APIURL:           viper.GetString("ASAAS_API_URL"),
			APIKey:           viper.GetString("ASAAS_API_KEY"),
			DispatcherWallet: viper.GetString("ASAAS_DISPATCHER_WALLET"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
