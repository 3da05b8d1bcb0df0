package partnerrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PartnerRepositoryIntegrationTestSuite provides integration tests for PartnerRepository
// using PostgreSQL containers to verify database persistence behavior.
type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partnerrepo.GormPartnerRepository
	tracker    *MockAggregateTracker
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&partnerrepo.PartnerDTO{}))
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE partners").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = partnerrepo.NewGormPartnerRepository(suite.db, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartnerRepositoryIntegrationTestSuite) createTestPartner(name, email string) *partner.Partner {
	p, err := partner.NewPartner(kernel.NewUUID(), name, email, "+15550001",
		[]string{"Downtown", "Midtown"})
	suite.Require().NoError(err)
	return p
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_ValidPartner_Success() {
	ctx := context.Background()
	p := suite.createTestPartner("Alex Smith", "alex@example.com")

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	err := suite.repository.Add(ctx, p)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&partnerrepo.PartnerDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	p := suite.createTestPartner("Alex Smith", "alex@example.com")
	p.SetShift("09:00", "17:00")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	restored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(p.ID()))
	suite.Equal("Alex Smith", restored.Name())
	suite.Equal("alex@example.com", restored.Email())
	suite.Equal(partner.Active, restored.Status())
	suite.Equal(0, restored.CurrentLoad())
	suite.Equal([]string{"Downtown", "Midtown"}, restored.Areas())
	start, end := restored.Shift()
	suite.Equal("09:00", start)
	suite.Equal("17:00", end)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	p := suite.createTestPartner("Alex Smith", "alex@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	p.Deactivate()
	suite.Require().NoError(p.SetAreas([]string{"Suburbs"}))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	restored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(partner.Inactive, restored.Status())
	suite.Equal([]string{"Suburbs"}, restored.Areas())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdateLoad_MatchingExpectation() {
	ctx := context.Background()
	p := suite.createTestPartner("Alex Smith", "alex@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.IncrementLoad())
	suite.Require().NoError(suite.repository.UpdateLoad(ctx, p, 0))

	restored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(1, restored.CurrentLoad())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdateLoad_StaleExpectation_Conflict() {
	ctx := context.Background()
	p := suite.createTestPartner("Alex Smith", "alex@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	// Another writer takes the slot first.
	suite.Require().NoError(suite.db.Model(&partnerrepo.PartnerDTO{}).
		Where("id = ?", p.ID().Bytes()).
		Update("current_load", 2).Error)

	suite.Require().NoError(p.IncrementLoad())
	err := suite.repository.UpdateLoad(ctx, p, 0)

	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	// The stored load is untouched by the rejected write.
	restored, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(2, restored.CurrentLoad())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestDelete_RemovesPartner() {
	ctx := context.Background()
	p := suite.createTestPartner("Alex Smith", "alex@example.com")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllActive_FiltersAndKeepsCreationOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestPartner("Zoe", "zoe@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	inactive := suite.createTestPartner("Bob", "bob@example.com")
	inactive.Deactivate()
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	second := suite.createTestPartner("Amy", "amy@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, second))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	// Creation order, not name order, and no inactive partners.
	suite.Require().Len(active, 2)
	suite.True(active[0].ID().IsEqual(first.ID()))
	suite.True(active[1].ID().IsEqual(second.ID()))
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
