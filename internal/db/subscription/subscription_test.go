package subscription

import (
	"context"
	"testing"
	"time"

	"dodoensemble/internal/core/domain/subscription"
	"dodoensemble/internal/core/domain/user"
	"dodoensemble/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2025, 9, 1, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   *PgxSubscriptionRepository
	userID user.ID
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxSubscriptionRepository(suite.pool)
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

func TestPgxSubscriptionRepository(t *testing.T) {
	if db.TestDatabaseURL() == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestUpsertCreates() {
	assert := suite.Require()

	sub, err := suite.repo.Upsert(context.Background(), subscription.UpsertInput{
		UserID:    suite.userID,
		Endpoint:  "https://push.example.com/endpoint-1",
		Keys:      subscription.Keys{P256dh: "p256dh-1", Auth: "auth-1"},
		UpdatedAt: NOW,
	})
	assert.Nil(err)
	assert.NotZero(sub.ID)
	assert.Equal(suite.userID, sub.UserID)

	subs, err := suite.repo.ReadAll(context.Background())
	assert.Nil(err)
	assert.Len(subs, 1)
	assert.Equal(sub, subs[0])
}

func (suite *testSuite) TestUpsertReplacesExisting() {
	assert := suite.Require()

	first, err := suite.repo.Upsert(context.Background(), subscription.UpsertInput{
		UserID:    suite.userID,
		Endpoint:  "https://push.example.com/endpoint-1",
		Keys:      subscription.Keys{P256dh: "p256dh-1", Auth: "auth-1"},
		UpdatedAt: NOW,
	})
	assert.Nil(err)

	second, err := suite.repo.Upsert(context.Background(), subscription.UpsertInput{
		UserID:    suite.userID,
		Endpoint:  "https://push.example.com/endpoint-2",
		Keys:      subscription.Keys{P256dh: "p256dh-2", Auth: "auth-2"},
		UpdatedAt: NOW.Add(time.Hour),
	})
	assert.Nil(err)
	assert.Equal(first.ID, second.ID)
	assert.Equal("https://push.example.com/endpoint-2", second.Endpoint)

	subs, err := suite.repo.ReadAll(context.Background())
	assert.Nil(err)
	assert.Len(subs, 1)
	assert.Equal("p256dh-2", subs[0].Keys.P256dh)
}

func (suite *testSuite) TestReadAllEmpty() {
	subs, err := suite.repo.ReadAll(context.Background())
	assert := suite.Require()
	assert.Nil(err)
	assert.Len(subs, 0)
}
