package menurepo_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/adapters/out/postgres/menurepo"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MenuItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuItemRepository
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)
	suite.repository = menurepo.NewGormMenuItemRepository(suite.db)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	item := suite.newMenuItem("Margherita", 1250)

	suite.Require().NoError(suite.repository.Add(ctx, item))

	loaded, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(item.ID(), loaded.ID())
	suite.Equal("Margherita", loaded.Name())
	suite.Equal(int64(1250), loaded.Price().Cents())
	suite.Nil(loaded.CategoryID())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetAllByIDs_SkipsMissing() {
	ctx := context.Background()
	first := suite.newMenuItem("Espresso", 300)
	second := suite.newMenuItem("Tiramisu", 700)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	items, err := suite.repository.GetAllByIDs(ctx, []kernel.UUID{
		first.ID(), second.ID(), kernel.NewUUID(),
	})
	suite.Require().NoError(err)
	suite.Len(items, 2)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetAllByIDs_EmptyInput() {
	ctx := context.Background()

	items, err := suite.repository.GetAllByIDs(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) newMenuItem(name string, cents int64) *menu.MenuItem {
	price, err := kernel.NewMoney(cents)
	suite.Require().NoError(err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), nil, name, price)
	suite.Require().NoError(err)
	return item
}

func TestMenuItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemRepositoryIntegrationTestSuite))
}
