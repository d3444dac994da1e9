package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/presentation"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newExportService(t *testing.T, generator *mocks.MockGenerator, enabled bool) (*ReportExportService, string) {
	t.Helper()

	output := filepath.Join(t.TempDir(), "report.json")
	cfg := &config.Config{ReportExport: config.ReportExport{
		CronSchedule: "0 6 * * *",
		OutputPath:   output,
		Enabled:      enabled,
	}}
	return NewReportExportService(generator, presentation.NewJSONRenderer(), cfg), output
}

func TestReportExportService_runExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := mocks.NewMockGenerator(ctrl)
	service, output := newExportService(t, mockGenerator, false)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "Exportação grava o arquivo e registra o relatório",
			setup: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any()).
					Return(&domain.Report{ID: "Rep001", Title: "Fluffy Bakes"}, nil)
			},
			validate: func(t *testing.T) {
				data, err := os.ReadFile(output)
				require.NoError(t, err)
				assert.Contains(t, string(data), `"id": "Rep001"`)

				status := service.GetStatus()
				assert.Equal(t, "Rep001", status["last_report_id"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "Falha na geração mantém o arquivo anterior",
			setup: func() {
				mockGenerator.EXPECT().
					Generate(gomock.Any()).
					Return(nil, errors.New("planilha ausente"))
			},
			validate: func(t *testing.T) {
				data, err := os.ReadFile(output)
				require.NoError(t, err)
				assert.Contains(t, string(data), "Rep001")

				status := service.GetStatus()
				assert.Equal(t, "planilha ausente", status["last_error"])
				assert.Equal(t, "Rep001", status["last_report_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.runExport(context.Background())
			tt.validate(t)
		})
	}

	// Nenhum arquivo temporário fica para trás
	entries, err := os.ReadDir(filepath.Dir(output))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReportExportService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem EXPECT: Generate não pode ser chamado
	mockGenerator := mocks.NewMockGenerator(ctrl)
	service, output := newExportService(t, mockGenerator, false)

	service.syncRunning = true
	assert.False(t, service.TriggerManualSync(context.Background()))
	service.runExport(context.Background())

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestReportExportService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newExportService(t, mocks.NewMockGenerator(ctrl), false)
	require.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
}

func TestReportExportService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newExportService(t, mocks.NewMockGenerator(ctrl), true)
	service.config.CronSchedule = "não é cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.Error(t, service.Start(ctx))
}
