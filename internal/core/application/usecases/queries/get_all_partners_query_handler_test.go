package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllPartnersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllPartnersQueryHandler
}

func (suite *GetAllPartnersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&partnerrepo.PartnerDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllPartnersQueryHandler(db)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllPartnersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE partners").Error
	suite.Require().NoError(err)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllPartnersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_WithPartners_ReturnsAllPartnersOrderedByName() {
	partners := suite.createTestPartners()
	suite.savePartners(partners)

	query := queries.NewGetAllPartnersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Alice", result[0].Name)
	suite.True(result[0].ID.IsEqual(partners[2].ID()))
	suite.Equal("Bob", result[1].Name)
	suite.Equal("Charlie", result[2].Name)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	p, err := partner.NewPartner(kernel.NewUUID(), "Alice", "alice@example.com",
		"+15550001", []string{"Downtown", "Midtown"})
	suite.Require().NoError(err)
	p.SetShift("09:00", "17:00")
	suite.Require().NoError(p.IncrementLoad())
	suite.savePartners([]*partner.Partner{p})

	query := queries.NewGetAllPartnersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("alice@example.com", result[0].Email)
	suite.Equal("+15550001", result[0].Phone)
	suite.Equal("active", result[0].Status)
	suite.Equal(1, result[0].CurrentLoad)
	suite.Equal([]string{"Downtown", "Midtown"}, result[0].Areas)
	suite.Equal("09:00", result[0].ShiftStart)
	suite.Equal("17:00", result[0].ShiftEnd)
}

func (suite *GetAllPartnersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllPartnersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllPartnersQuery constructor")
}

func (suite *GetAllPartnersQueryHandlerTestSuite) createTestPartners() []*partner.Partner {
	partners := make([]*partner.Partner, 0)

	for _, tc := range []struct {
		name  string
		email string
	}{
		{"Charlie", "charlie@example.com"},
		{"Bob", "bob@example.com"},
		{"Alice", "alice@example.com"},
	} {
		p, err := partner.NewPartner(kernel.NewUUID(), tc.name, tc.email,
			"+15550001", []string{"Downtown"})
		suite.Require().NoError(err)
		partners = append(partners, p)
	}

	return partners
}

func (suite *GetAllPartnersQueryHandlerTestSuite) savePartners(partners []*partner.Partner) {
	repo := partnerrepo.NewGormPartnerRepository(suite.db, &mockAggregateTracker{})
	for _, p := range partners {
		err := repo.Add(context.Background(), p)
		suite.Require().NoError(err)
	}
}

func TestGetAllPartnersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetAllPartnersQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for seeding query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
