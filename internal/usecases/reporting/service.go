package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/classifying"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/loading"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
	"github.com/vfg2006/bakery-dashboard/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/generator.go -package=mocks

// Generator gera o documento do painel. Cada chamada é uma execução independente.
type Generator interface {
	Generate(ctx context.Context) (*domain.Report, error)
}

type Service struct {
	loader loading.Loader
	cfg    *config.Config
	now    func() time.Time
}

func NewService(loader loading.Loader, cfg *config.Config) *Service {
	return &Service{
		loader: loader,
		cfg:    cfg,
		now:    time.Now,
	}
}

// aggregates guarda os resultados das agregações calculadas em paralelo
type aggregates struct {
	summary  domain.SalesSummary
	topItems []domain.CountRow
	monthly  []domain.MonthlyRevenue
	peakDays []domain.CountRow
	payments []domain.CountRow
	loyalty  domain.LoyaltySplit
	rollups  []domain.CustomerRollup
}

func (s *Service) Generate(ctx context.Context) (*domain.Report, error) {
	start := time.Now()
	logger := log.ForContext(ctx)

	table, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar a tabela de vendas")
		return nil, NewReportError(err, StageLoad)
	}

	agg, err := s.aggregate(table)
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular as agregações")
		return nil, NewReportError(err, StageAggregate)
	}

	classification, err := classifying.Classify(ctx, agg.rollups, s.cfg.Classifier)
	if err != nil {
		logger.WithError(err).Error("Erro ao treinar o classificador de clientes")
		return nil, NewReportError(err, StageClassify)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(err, StageAssemble)
	}

	report := &domain.Report{
		ID:             id,
		Title:          s.cfg.Dashboard.Title,
		GeneratedAt:    s.now().UTC(),
		Summary:        agg.summary,
		TopItems:       agg.topItems,
		MonthlyRevenue: agg.monthly,
		PeakDays:       agg.peakDays,
		PaymentModes:   agg.payments,
		Loyalty:        agg.loyalty,
		Classification: classification,
		Sections: []domain.Section{
			titleSection(s.cfg.Dashboard.Title, agg.summary),
			topItemsSection(agg.topItems, s.cfg.Dashboard.TopItemsLimit),
			monthlyRevenueSection(agg.monthly),
			peakDaysSection(agg.peakDays),
			paymentModesSection(agg.payments),
			loyaltySection(agg.loyalty),
			classificationSection(classification),
			suggestionsSection(),
		},
		Footer: Footer,
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   report.ID,
		"records":     table.Len(),
		"sections":    len(report.Sections),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Relatório do painel gerado")

	return report, nil
}

// aggregate executa as agregações em paralelo sobre a tabela imutável. Os erros são
// verificados em ordem fixa depois que todas terminam.
func (s *Service) aggregate(table *domain.SalesTable) (*aggregates, error) {
	var (
		agg                                                  aggregates
		summaryErr, topErr, monthlyErr, daysErr, paymentsErr error
		loyaltyErr, rollupsErr                               error
	)

	wg := sync.WaitGroup{}
	wg.Add(7)

	go func() {
		defer wg.Done()
		agg.summary, summaryErr = aggregating.Summary(table)
	}()
	go func() {
		defer wg.Done()
		agg.topItems, topErr = aggregating.TopItems(table, s.cfg.Dashboard.TopItemsLimit)
	}()
	go func() {
		defer wg.Done()
		agg.monthly, monthlyErr = aggregating.MonthlyRevenue(table)
	}()
	go func() {
		defer wg.Done()
		agg.peakDays, daysErr = aggregating.PeakDays(table)
	}()
	go func() {
		defer wg.Done()
		agg.payments, paymentsErr = aggregating.PaymentModes(table)
	}()
	go func() {
		defer wg.Done()
		agg.loyalty, loyaltyErr = aggregating.LoyaltySplit(table)
	}()
	go func() {
		defer wg.Done()
		agg.rollups, rollupsErr = aggregating.CustomerRollups(table)
	}()

	wg.Wait()

	for _, err := range []error{summaryErr, topErr, monthlyErr, daysErr, paymentsErr, loyaltyErr, rollupsErr} {
		if err != nil {
			return nil, err
		}
	}

	return &agg, nil
}
