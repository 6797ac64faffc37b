package event

import (
	"context"
	"testing"
	"time"

	c "dodoensemble/internal/core/domain/common"
	"dodoensemble/internal/core/domain/event"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2025, 9, 1, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   *PgxEventRepository
	userID user.ID
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxEventRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	row := suite.pool.QueryRow(
		context.Background(),
		`INSERT INTO "user" (name) VALUES ('Dodo') RETURNING id`,
	)
	suite.Require().Nil(row.Scan(&suite.userID))
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxEventRepository(t *testing.T) {
	if db.TestDatabaseURL() == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateAndGet() {
	assert := suite.Require()

	created, err := suite.repo.Create(context.Background(), event.CreateInput{
		Date:      "2025-09-02",
		Time:      c.NewOptional("19:30", true),
		Title:     "Dîner",
		Location:  c.NewOptional("Chez nous", true),
		IsMystery: true,
		CreatedBy: suite.userID,
		CreatedAt: NOW,
	})
	assert.Nil(err)
	assert.NotZero(created.ID)

	got, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(created, got)
	assert.Equal("2025-09-02", got.Date)
	assert.True(got.Time.IsPresent)
	assert.Equal("19:30", got.Time.Value)
	assert.True(got.Location.IsPresent)
	assert.False(got.Description.IsPresent)
	assert.True(got.IsMystery)
}

func (suite *testSuite) TestCreateWithoutTime() {
	assert := suite.Require()

	created, err := suite.repo.Create(context.Background(), event.CreateInput{
		Date:      "2025-09-03",
		Title:     "Anniversaire",
		CreatedBy: suite.userID,
		CreatedAt: NOW,
	})
	assert.Nil(err)
	assert.False(created.Time.IsPresent)

	got, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.False(got.Time.IsPresent)
}

func (suite *testSuite) TestGetDoesNotExist() {
	_, err := suite.repo.GetByID(context.Background(), event.ID(12345))
	suite.Require().ErrorIs(err, event.ErrEventDoesNotExist)
}

func (suite *testSuite) TestReadAllOrderedByDate() {
	assert := suite.Require()

	for _, date := range []string{"2025-09-05", "2025-09-01", "2025-09-03"} {
		_, err := suite.repo.Create(context.Background(), event.CreateInput{
			Date:      date,
			Title:     "Événement " + date,
			CreatedBy: suite.userID,
			CreatedAt: NOW,
		})
		assert.Nil(err)
	}

	events, err := suite.repo.ReadAll(context.Background())
	assert.Nil(err)
	assert.Len(events, 3)
	assert.Equal("2025-09-01", events[0].Date)
	assert.Equal("2025-09-03", events[1].Date)
	assert.Equal("2025-09-05", events[2].Date)
}

func (suite *testSuite) TestUpdate() {
	assert := suite.Require()

	created, err := suite.repo.Create(context.Background(), event.CreateInput{
		Date:      "2025-09-02",
		Time:      c.NewOptional("19:30", true),
		Title:     "Dîner",
		CreatedBy: suite.userID,
		CreatedAt: NOW,
	})
	assert.Nil(err)

	updated, err := suite.repo.Update(context.Background(), event.UpdateInput{
		ID:          created.ID,
		Date:        "2025-09-04",
		Title:       "Dîner reporté",
		Description: c.NewOptional("On décale.", true),
	})
	assert.Nil(err)
	assert.Equal("2025-09-04", updated.Date)
	assert.Equal("Dîner reporté", updated.Title)
	assert.False(updated.Time.IsPresent)
	assert.True(updated.Description.IsPresent)

	got, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(updated, got)
}

func (suite *testSuite) TestUpdateDoesNotExist() {
	_, err := suite.repo.Update(context.Background(), event.UpdateInput{
		ID:    event.ID(12345),
		Date:  "2025-09-04",
		Title: "Fantôme",
	})
	suite.Require().ErrorIs(err, event.ErrEventDoesNotExist)
}

func (suite *testSuite) TestDelete() {
	assert := suite.Require()

	created, err := suite.repo.Create(context.Background(), event.CreateInput{
		Date:      "2025-09-02",
		Title:     "Dîner",
		CreatedBy: suite.userID,
		CreatedAt: NOW,
	})
	assert.Nil(err)

	assert.Nil(suite.repo.Delete(context.Background(), created.ID))

	_, err = suite.repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(err, event.ErrEventDoesNotExist)

	assert.ErrorIs(suite.repo.Delete(context.Background(), created.ID), event.ErrEventDoesNotExist)
}
