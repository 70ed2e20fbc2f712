package enrollment_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"topics/internal/enrollment"
	"topics/pkg/domain"
	"topics/pkg/storage"
	mockstorage "topics/pkg/storage/mock"
	mocktopiccache "topics/pkg/topiccache/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProvisioner(t *testing.T) (*mockstorage.MockStorage, *enrollment.Provisioner) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	p, err := enrollment.NewProvisioner(st, nil, "", noopMeter())
	require.NoError(t, err)

	return st, p
}

func TestProvisioner_EnsureTopic_Existing(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	existing := newTopic(scope, "news", "News")

	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(existing, nil)
	// no CreateTopic expected

	topic, err := p.EnsureTopic(context.Background(), scope, "news")
	require.NoError(t, err)
	require.Equal(t, existing, topic)
}

func TestProvisioner_EnsureTopic_CreatesOnMiss(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()

	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, nil)
	st.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, topic domain.Topic) (*domain.Topic, error) {
			require.Equal(t, scope, topic.Scope())
			require.Equal(t, domain.TopicKey("news"), topic.Key)
			require.Equal(t, "Topic-On-The-Fly-news", topic.Name)

			return newTopic(scope, topic.Key, topic.Name), nil
		},
	)

	topic, err := p.EnsureTopic(context.Background(), scope, "news")
	require.NoError(t, err)
	require.Equal(t, "Topic-On-The-Fly-news", topic.Name)
	require.Equal(t, scope, topic.Scope())
}

func TestProvisioner_EnsureTopic_Idempotent(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	var created *domain.Topic

	gomock.InOrder(
		st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, nil),
		st.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, topic domain.Topic) (*domain.Topic, error) {
				created = newTopic(scope, topic.Key, topic.Name)

				return created, nil
			},
		),
		// the second call is a pure read
		st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).DoAndReturn(
			func(context.Context, domain.Scope, domain.TopicKey) (*domain.Topic, error) { return created, nil },
		),
	)

	first, err := p.EnsureTopic(context.Background(), scope, "news")
	require.NoError(t, err)
	second, err := p.EnsureTopic(context.Background(), scope, "news")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestProvisioner_EnsureTopic_DuplicateKeyReadsBack(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	winner := newTopic(scope, "news", "News by another writer")

	gomock.InOrder(
		st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, nil),
		st.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("topic %q already exists: %w", "news", storage.ErrDuplicateKey)),
		st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(winner, nil),
	)

	topic, err := p.EnsureTopic(context.Background(), scope, "news")
	require.NoError(t, err)
	require.Equal(t, winner.ID, topic.ID)
	require.Equal(t, winner.Name, topic.Name)
}

func TestProvisioner_EnsureTopic_DuplicateKeyStillMissing(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()

	gomock.InOrder(
		st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, nil),
		st.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
		st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, nil),
	)

	_, err := p.EnsureTopic(context.Background(), scope, "news")
	require.ErrorIs(t, err, enrollment.ErrTopicProvisioning)
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestProvisioner_EnsureTopic_CreateFails(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	boom := errors.New("db down")

	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, nil)
	st.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := p.EnsureTopic(context.Background(), scope, "news")
	require.ErrorIs(t, err, enrollment.ErrTopicProvisioning)
	require.ErrorIs(t, err, boom)
}

func TestProvisioner_EnsureTopic_LookupFails(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	boom := errors.New("db down")

	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(nil, boom)

	_, err := p.EnsureTopic(context.Background(), scope, "news")
	require.ErrorIs(t, err, enrollment.ErrTopicProvisioning)
	require.ErrorIs(t, err, boom)
}

func TestProvisioner_EnsureTopic_ConcurrentCallers(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	existing := newTopic(scope, "news", "News")

	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).Return(existing, nil).MinTimes(1)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*domain.Topic, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			topic, err := p.EnsureTopic(context.Background(), scope, "news")
			if err == nil {
				results[i] = topic
			}
		}()
	}
	wg.Wait()

	for _, topic := range results {
		require.NotNil(t, topic)
		require.Equal(t, existing.ID, topic.ID)
	}
	// every caller owns its copy
	require.NotSame(t, results[0], results[1])
}

func TestProvisioner_EnsureTopic_CancelledCallerDoesNotFailOthers(t *testing.T) {
	st, p := newTestProvisioner(t)
	scope := newScope()
	existing := newTopic(scope, "news", "News")

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("news")).DoAndReturn(
		func(ctx context.Context, _ domain.Scope, _ domain.TopicKey) (*domain.Topic, error) {
			once.Do(func() { close(started) })
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return existing, nil
		},
	).MinTimes(1)

	first, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := p.EnsureTopic(first, scope, "news")
		firstErr <- err
	}()
	<-started

	type result struct {
		topic *domain.Topic
		err   error
	}
	second := make(chan result, 1)
	go func() {
		topic, err := p.EnsureTopic(context.Background(), scope, "news")
		second <- result{topic: topic, err: err}
	}()
	// let the second caller join the running lookup
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	err := <-firstErr
	require.ErrorIs(t, err, enrollment.ErrTopicProvisioning)
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	require.Equal(t, existing.ID, res.topic.ID)
}

func TestProvisioner_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	cache := mocktopiccache.NewMockCache(ctrl)
	p, err := enrollment.NewProvisioner(st, cache, "auto-", noopMeter())
	require.NoError(t, err)

	scope := newScope()
	cached := newTopic(scope, "news", "News")

	// hit: storage untouched
	cache.EXPECT().Get(gomock.Any(), scope, domain.TopicKey("news")).Return(cached, nil)
	topic, err := p.EnsureTopic(context.Background(), scope, "news")
	require.NoError(t, err)
	require.Equal(t, cached.ID, topic.ID)

	// cache failure falls through to storage, created topic is cached
	cache.EXPECT().Get(gomock.Any(), scope, domain.TopicKey("alerts")).Return(nil, errors.New("redis down"))
	st.EXPECT().TopicByKey(gomock.Any(), scope, domain.TopicKey("alerts")).Return(nil, nil)
	st.EXPECT().CreateTopic(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, topic domain.Topic) (*domain.Topic, error) {
			require.Equal(t, "auto-alerts", topic.Name)

			return newTopic(scope, topic.Key, topic.Name), nil
		},
	)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, topic domain.Topic) error {
			require.Equal(t, domain.TopicKey("alerts"), topic.Key)

			return errors.New("redis down")
		},
	)
	topic, err = p.EnsureTopic(context.Background(), scope, "alerts")
	require.NoError(t, err)
	require.Equal(t, "auto-alerts", topic.Name)
}

func TestProvisionalName(t *testing.T) {
	require.Equal(t, "Topic-On-The-Fly-news", enrollment.ProvisionalName(enrollment.DefaultProvisionalNamePrefix, "news"))
}
