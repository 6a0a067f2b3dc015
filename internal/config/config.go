package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Dataset Dataset `mapstructure:",squash"`
	Report  Report  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset controla a geração da tabela sintética. Seed = 0 significa semear
// pelo relógio (cada processo gera uma tabela diferente).
type Dataset struct {
	Seed           int64    `mapstructure:"dataset_seed"`
	AgencyFee      float64  `mapstructure:"dataset_agency_fee"`
	CommissionRate float64  `mapstructure:"dataset_commission_rate"`
	Clients        []string `mapstructure:"dataset_clients"`
}

type Report struct {
	LeaderboardSize int `mapstructure:"leaderboard_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Defaults da geração de dados sintéticos
	viper.SetDefault("DATASET_SEED", 0)                // 0 = semear pelo relógio
	viper.SetDefault("DATASET_AGENCY_FEE", 2500.0)     // Fee mensal fixo da agência
	viper.SetDefault("DATASET_COMMISSION_RATE", 0.20)  // Comissão fixa da plataforma
	viper.SetDefault("DATASET_CLIENTS", "")            // Vazio = lista padrão de 20 clientes
	viper.SetDefault("LEADERBOARD_SIZE", 5)            // Top N do leaderboard de crescimento
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// O hook de slice transforma "" em [""], então descartamos entradas vazias.
	// Lista vazia faz o gerador usar a carteira padrão de clientes.
	clients := make([]string, 0, len(config.Dataset.Clients))
	for _, name := range config.Dataset.Clients {
		if name != "" {
			clients = append(clients, name)
		}
	}
	config.Dataset.Clients = clients

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
