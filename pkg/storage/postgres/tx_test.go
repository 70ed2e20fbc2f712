package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"topics/pkg/domain"
	"topics/pkg/storage"
	"topics/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_IsolatesUntilCommit(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	scope := newScope()

	txStorage, err := pgSQL.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	created, err := txStorage.CreateTopic(ctx, newTopic(scope, "launches"))
	require.NoError(t, err)

	// visible inside the tx only
	inTx, err := txStorage.TopicByKey(ctx, scope, "launches")
	require.NoError(t, err)
	require.NotNil(t, inTx)
	require.Equal(t, created.ID, inTx.ID)

	outside, err := pgSQL.TopicByKey(ctx, scope, "launches")
	require.NoError(t, err)
	require.Nil(t, outside)

	require.NoError(t, txStorage.Commit())

	outside, err = pgSQL.TopicByKey(ctx, scope, "launches")
	require.NoError(t, err)
	require.NotNil(t, outside)
	require.Equal(t, created.ID, outside.ID)
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	require.ErrorIs(t, pgSQL.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pgSQL.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Rollback_DiscardsTopicAndLinks(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	scope := newScope()

	subs, err := pgSQL.StoreSubscribers(ctx, newSubscriber(scope, "a"), newSubscriber(scope, "b"))
	require.NoError(t, err)

	txStorage, err := pgSQL.Begin(ctx)
	require.NoError(t, err)

	topic, err := txStorage.CreateTopic(ctx, newTopic(scope, "outages"))
	require.NoError(t, err)
	require.NoError(t, txStorage.AddTopicSubscribers(ctx, linksFor(topic, subs)...))

	count, err := txStorage.TopicSubscriberCount(ctx, topic.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	require.NoError(t, txStorage.Rollback())

	found, err := pgSQL.TopicByKey(ctx, scope, "outages")
	require.NoError(t, err)
	require.Nil(t, found)

	count, err = pgSQL.TopicSubscriberCount(ctx, topic.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPgSQL_WithTx_CommitsTopicAndLinks(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	scope := newScope()

	subs, err := pgSQL.StoreSubscribers(ctx,
		newSubscriber(scope, "a"), newSubscriber(scope, "b"),
		newSubscriber(scope, "c"), newSubscriber(scope, "d"))
	require.NoError(t, err)

	var topic *domain.Topic
	err = pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		var e error
		if topic, e = s.CreateTopic(ctx, newTopic(scope, "billing")); e != nil {
			return e //nolint: wrapcheck
		}

		// more links than testChunkSize, so the insert spans several statements
		return s.AddTopicSubscribers(ctx, linksFor(topic, subs)...) //nolint: wrapcheck
	})
	require.NoError(t, err)

	found, err := pgSQL.TopicByKey(ctx, scope, "billing")
	require.NoError(t, err)
	require.NotNil(t, found)

	count, err := pgSQL.TopicSubscriberCount(ctx, topic.ID)
	require.NoError(t, err)
	require.EqualValues(t, len(subs), count)
}

func TestPgSQL_WithTx_RollsBackOnDuplicateTopic(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	scope := newScope()

	_, err := pgSQL.CreateTopic(ctx, newTopic(scope, "news"))
	require.NoError(t, err)

	subs, err := pgSQL.StoreSubscribers(ctx, newSubscriber(scope, "a"))
	require.NoError(t, err)

	var staged *domain.Topic
	err = pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		var e error
		if staged, e = s.CreateTopic(ctx, newTopic(scope, "alerts")); e != nil {
			return e //nolint: wrapcheck
		}
		if e = s.AddTopicSubscribers(ctx, linksFor(staged, subs)...); e != nil {
			return e //nolint: wrapcheck
		}

		_, e = s.CreateTopic(ctx, newTopic(scope, "news"))

		return e //nolint: wrapcheck
	})
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
	require.NotNil(t, staged)

	found, err := pgSQL.TopicByKey(ctx, scope, "alerts")
	require.NoError(t, err)
	require.Nil(t, found)

	count, err := pgSQL.TopicSubscriberCount(ctx, staged.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	// the pre-existing topic is untouched
	found, err = pgSQL.TopicByKey(ctx, scope, "news")
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestPgSQL_WithTx_ChunkedLinkFailureRollsBackTopic(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	scope := newScope()

	in := make([]domain.Subscriber, 0, 2*testChunkSize)
	for i := range cap(in) {
		in = append(in, newSubscriber(scope, fmt.Sprintf("s-%d", i)))
	}
	subs, err := pgSQL.StoreSubscribers(ctx, in...)
	require.NoError(t, err)

	var staged *domain.Topic
	err = pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		var e error
		if staged, e = s.CreateTopic(ctx, newTopic(scope, "incidents")); e != nil {
			return e //nolint: wrapcheck
		}

		links := linksFor(staged, subs)
		// the first chunk succeeds, the second references an unknown subscriber
		links[len(links)-1].SubscriberID = domain.SubscriberID(uuid.New())

		return s.AddTopicSubscribers(ctx, links...) //nolint: wrapcheck
	})
	require.Error(t, err)
	require.NotNil(t, staged)

	found, err := pgSQL.TopicByKey(ctx, scope, "incidents")
	require.NoError(t, err)
	require.Nil(t, found)

	count, err := pgSQL.TopicSubscriberCount(ctx, staged.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}
