package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-insight-api/infrastructure/synthetic"
	"github.com/vfg2006/client-insight-api/internal/api"
	"github.com/vfg2006/client-insight-api/internal/config"
	"github.com/vfg2006/client-insight-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A tabela sintética é gerada uma única vez por processo; aquecemos o
	// cache aqui para a primeira requisição não pagar a geração
	generator := synthetic.NewGenerator(cfg.Dataset)
	meta := generator.Meta()
	logrus.WithFields(logrus.Fields{
		"dataset_id":  meta.ID,
		"num_records": meta.NumRecords,
	}).Info("Dataset pronto para consulta")

	reportService := reporting.NewService(generator, cfg)

	server, err := api.New(cfg, reportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
