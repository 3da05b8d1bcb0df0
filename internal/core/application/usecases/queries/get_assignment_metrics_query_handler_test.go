package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAssignmentMetricsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAssignmentMetricsQueryHandler
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&assignmentrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAssignmentMetricsQueryHandler(db)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE assignments").Error
	suite.Require().NoError(err)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_EmptyLog_ZeroMetrics() {
	query := queries.NewGetAssignmentMetricsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.TotalAssigned)
	suite.Zero(result.SuccessRate)
	suite.Empty(result.FailureReasons)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_MixedLog_ComputesRateAndBreakdown() {
	suite.saveSuccessRecords(3)
	suite.saveFailedRecord("No partners available in the area")
	suite.saveFailedRecord("No partners available in the area")
	suite.saveFailedRecord("Partner is at maximum capacity")

	query := queries.NewGetAssignmentMetricsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(6, result.TotalAssigned)
	suite.InDelta(50.0, result.SuccessRate, 0.001)
	suite.Equal(map[string]int{
		"No partners available in the area": 2,
		"Partner is at maximum capacity":    1,
	}, result.FailureReasons)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_AllSuccesses_FullRate() {
	suite.saveSuccessRecords(4)

	query := queries.NewGetAssignmentMetricsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(4, result.TotalAssigned)
	suite.InDelta(100.0, result.SuccessRate, 0.001)
	suite.Empty(result.FailureReasons)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_MissingReason_CountedAsUnknown() {
	// Rows written before reasons became mandatory can carry an empty reason.
	dto := assignmentrepo.AssignmentDTO{
		ID:        uuid.New(),
		OrderID:   uuid.New(),
		Status:    "failed",
		Reason:    "",
		CreatedAt: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	suite.saveFailedRecord("Order not found")

	query := queries.NewGetAssignmentMetricsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(map[string]int{
		queries.UnknownFailureReason: 1,
		"Order not found":            1,
	}, result.FailureReasons)
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAssignmentMetricsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAssignmentMetricsQuery constructor")
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) saveSuccessRecords(count int) {
	repo := assignmentrepo.NewGormAssignmentRepository(suite.db, &mockAggregateTracker{})
	for range count {
		record, err := assignment.NewSuccessAssignment(kernel.NewUUID(), kernel.NewUUID())
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), record))
	}
}

func (suite *GetAssignmentMetricsQueryHandlerTestSuite) saveFailedRecord(reason string) {
	repo := assignmentrepo.NewGormAssignmentRepository(suite.db, &mockAggregateTracker{})
	record, err := assignment.NewFailedAssignment(kernel.NewUUID(), nil, reason)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(context.Background(), record))
}

func TestGetAssignmentMetricsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetAssignmentMetricsQueryHandlerTestSuite))
}
