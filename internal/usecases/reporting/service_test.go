package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-bot/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-bot/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_AvailableYears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKPIReportRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		setup    func()
		expected []int
		wantErr  bool
	}{
		{
			name: "Anos em ordem decrescente, como a view devolve",
			setup: func() {
				mockRepo.EXPECT().
					ListYears("79331234567").
					Return([]int{2024, 2023}, nil)
			},
			expected: []int{2024, 2023},
		},
		{
			name: "Sem dados retorna lista vazia, não erro",
			setup: func() {
				mockRepo.EXPECT().
					ListYears("79331234567").
					Return([]int{}, nil)
			},
			expected: []int{},
		},
		{
			name: "Erro do repositório é propagado",
			setup: func() {
				mockRepo.EXPECT().
					ListYears("79331234567").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			years, err := service.AvailableYears("79331234567")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, years)
		})
	}
}

func TestService_AvailableMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKPIReportRepository(ctrl)
	service := NewService(mockRepo)

	january := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	march := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	october := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

	// A view devolve ascendente; o serviço entrega do mais recente para
	// o mais antigo
	mockRepo.EXPECT().
		ListMonths("79331234567", 2023).
		Return([]time.Time{january, march, october}, nil)

	months, err := service.AvailableMonths("79331234567", 2023)

	assert.NoError(t, err)
	assert.Equal(t, []time.Time{october, march, january}, months)
}

func TestService_AvailableMonths_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKPIReportRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ListMonths("79331234567", 2023).
		Return(nil, errors.New("connection refused"))

	months, err := service.AvailableMonths("79331234567", 2023)

	assert.Error(t, err)
	assert.Nil(t, months)
}

func TestService_MonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockKPIReportRepository(ctrl)
	service := NewService(mockRepo)

	march := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Relatório encontrado", func(t *testing.T) {
		expected := &domain.KPIReport{
			EmployeeName: "Иванова Анна",
			Phone:        "79331234567",
			Month:        march,
			Salary:       78000,
		}

		mockRepo.EXPECT().
			GetByPhoneAndMonth("79331234567", march).
			Return(expected, nil)

		report, err := service.MonthlyReport("79331234567", march)

		assert.NoError(t, err)
		assert.Equal(t, expected, report)
	})

	t.Run("Ausência de linha não é erro", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByPhoneAndMonth("79331234567", march).
			Return(nil, nil)

		report, err := service.MonthlyReport("79331234567", march)

		assert.NoError(t, err)
		assert.Nil(t, report)
	})
}
