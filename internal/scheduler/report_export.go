package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/presentation"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// ReportExportConfig representa a configuração da exportação agendada do painel
type ReportExportConfig struct {
	CronSchedule string
	OutputPath   string
	Enabled      bool
}

// ReportExportService regenera o painel periodicamente e grava o HTML em disco
type ReportExportService struct {
	scheduler         *gocron.Scheduler
	config            ReportExportConfig
	generator         reporting.Generator
	renderer          presentation.Renderer
	syncRunning       bool
	syncMutex         sync.Mutex
	lastSyncStartedAt time.Time
	lastCompletedAt   time.Time
	lastReportID      string
	lastError         string
}

// NewReportExportService cria uma nova instância do serviço de exportação
func NewReportExportService(
	generator reporting.Generator,
	renderer presentation.Renderer,
	appConfig *config.Config,
) *ReportExportService {
	exportConfig := ReportExportConfig{
		CronSchedule: appConfig.ReportExport.CronSchedule,
		OutputPath:   appConfig.ReportExport.OutputPath,
		Enabled:      appConfig.ReportExport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"output_path":   exportConfig.OutputPath,
		"enabled":       exportConfig.Enabled,
	}).Info("Configuração da exportação do painel carregada")

	return &ReportExportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    exportConfig,
		generator: generator,
		renderer:  renderer,
	}
}

// Start inicia o agendador
func (s *ReportExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Exportação agendada do painel desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de exportação do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runExport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportação do painel")
		s.scheduler.Stop()
	}()

	return nil
}

// runExport executa uma exportação, ignorando a chamada se outra já estiver em andamento
func (s *ReportExportService) runExport(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação do painel já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, correlationID := log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando exportação do painel")

	reportID, err := s.export(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Error("Erro na exportação do painel")
		return
	}

	s.lastError = ""
	s.lastReportID = reportID
	s.lastCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"report_id":      reportID,
		"output_path":    s.config.OutputPath,
		"duration":       time.Since(s.lastSyncStartedAt).String(),
	}).Info("Exportação do painel concluída")
}

// export gera o relatório e substitui o arquivo de saída de forma atômica
func (s *ReportExportService) export(ctx context.Context) (string, error) {
	report, err := s.generator.Generate(ctx)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, report); err != nil {
		return "", fmt.Errorf("erro ao renderizar o painel: %w", err)
	}

	if err := writeFileAtomic(s.config.OutputPath, buf.Bytes()); err != nil {
		return "", err
	}

	return report.ID, nil
}

// TriggerManualSync inicia uma exportação fora do agendamento. Retorna false se
// já houver uma em andamento.
func (s *ReportExportService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação do painel já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando exportação manual do painel")
	go s.runExport(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual da exportação
func (s *ReportExportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"output_path":            s.config.OutputPath,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
		"last_report_id":         s.lastReportID,
		"last_error":             s.lastError,
	}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário em %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("erro ao gravar arquivo temporário: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao fechar arquivo temporário: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao substituir %s: %w", path, err)
	}
	return nil
}
