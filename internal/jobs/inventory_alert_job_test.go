package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAlertsReader struct{ mock.Mock }

func (m *MockAlertsReader) Handle(ctx context.Context) (queries.InventoryAlerts, error) {
	args := m.Called(ctx)
	return args.Get(0).(queries.InventoryAlerts), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) SetInventoryAlerts(lowStock, expiring int) {
	m.Called(lowStock, expiring)
}

func (m *MockPublisher) InventoryScanFailed() {
	m.Called()
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestNewInventoryAlertJob_InvalidSchedule(t *testing.T) {
	_, err := jobs.NewInventoryAlertJob(new(MockAlertsReader), new(MockPublisher), "every hour", newLogger(new(bytes.Buffer)))
	require.Error(t, err)
}

func TestInventoryAlertJob_Run_PublishesCounts(t *testing.T) {
	days := 3
	alerts := queries.InventoryAlerts{
		LowStock: []queries.InventoryItemView{{ID: 1, Name: "Levadura", Quantity: 4}, {ID: 2, Name: "Azúcar", Quantity: 9}},
		Expiring: []queries.InventoryItemView{{ID: 1, Name: "Levadura", DaysUntilExpiry: &days}},
	}

	reader := new(MockAlertsReader)
	reader.On("Handle", mock.Anything).Return(alerts, nil).Once()
	publisher := new(MockPublisher)
	publisher.On("SetInventoryAlerts", 2, 1).Once()

	var logs bytes.Buffer
	job, err := jobs.NewInventoryAlertJob(reader, publisher, "@every 1h", newLogger(&logs))
	require.NoError(t, err)

	job.Run(t.Context())

	reader.AssertExpectations(t)
	publisher.AssertExpectations(t)
	assert.Contains(t, logs.String(), "Inventory item is low on stock")
	assert.Contains(t, logs.String(), "Inventory item is about to expire")
	assert.Contains(t, logs.String(), `"component":"inventory_alert_job"`)
}

func TestInventoryAlertJob_Run_Failure(t *testing.T) {
	reader := new(MockAlertsReader)
	reader.On("Handle", mock.Anything).Return(queries.InventoryAlerts{}, errors.New("connection refused")).Once()
	publisher := new(MockPublisher)
	publisher.On("InventoryScanFailed").Once()

	var logs bytes.Buffer
	job, err := jobs.NewInventoryAlertJob(reader, publisher, "*/5 * * * *", newLogger(&logs))
	require.NoError(t, err)

	job.Run(t.Context())

	publisher.AssertExpectations(t)
	publisher.AssertNotCalled(t, "SetInventoryAlerts", mock.Anything, mock.Anything)
	assert.Contains(t, logs.String(), "connection refused")
}

func TestJobManager_StartStop(t *testing.T) {
	reader := new(MockAlertsReader)
	reader.On("Handle", mock.Anything).Return(queries.InventoryAlerts{}, nil).Maybe()
	publisher := new(MockPublisher)
	publisher.On("SetInventoryAlerts", 0, 0).Maybe()

	manager, err := jobs.NewJobManager(reader, publisher, "@hourly", newLogger(new(bytes.Buffer)))
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
