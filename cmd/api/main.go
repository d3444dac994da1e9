package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/internal/api"
	"github.com/vfg2006/bakery-dashboard/internal/api/handler"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/presentation"
	"github.com/vfg2006/bakery-dashboard/internal/scheduler"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/loading"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closer, err := loading.NewSource(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte de vendas")
	}
	defer closer.Close()

	logrus.WithField("source", cfg.Source.Kind).Info("Fonte de vendas configurada")

	loader := loading.NewService(source, cfg.Source.Kind)
	generator := reporting.NewService(loader, cfg)

	charts := presentation.NewPNGChartRenderer()
	renderers := handler.Renderers{
		HTML:   presentation.NewHTMLRenderer(charts),
		JSON:   presentation.NewJSONRenderer(),
		Charts: charts,
	}

	reportExportService := scheduler.NewReportExportService(generator, renderers.HTML, cfg)
	if err := reportExportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação do painel")
	}

	server, err := api.New(cfg, generator, renderers, reportExportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
