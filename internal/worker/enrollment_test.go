package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"topics/internal/enrollment"
	mockenrollment "topics/internal/enrollment/mock"
	"topics/internal/worker"
	"topics/pkg/domain"
	"topics/pkg/logger"
	"topics/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newRequest() enrollment.Request {
	return enrollment.Request{
		Scope: domain.Scope{
			OrganizationID: domain.OrganizationID(uuid.New()),
			EnvironmentID:  domain.EnvironmentID(uuid.New()),
		},
		TopicKey:    "news",
		Subscribers: []domain.ExternalSubscriberID{"a", "b"},
	}
}

func makeJob(id int64, req enrollment.Request) *river.Job[enrollment.JobArgs] {
	return &river.Job[enrollment.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   enrollment.NewJobArgs(req, 3),
	}
}

func newTestWorker(t *testing.T) (*mockenrollment.MockEnroller, *worker.EnrollmentWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mock := mockenrollment.NewMockEnroller(ctrl)

	return mock, worker.NewEnrollmentWorker(mock, worker.Options{
		JobTimeout:       time.Minute,
		RateLimitBackoff: 10 * time.Second,
	})
}

func TestEnrollmentWorker_Work_Success(t *testing.T) {
	mock, w := newTestWorker(t)
	req := newRequest()

	mock.EXPECT().Enroll(gomock.Any(), req).Return(enrollment.Result{
		Existing: []domain.ExternalSubscriberID{"a"},
		NotFound: []domain.ExternalSubscriberID{"b"},
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, req)))
}

func TestEnrollmentWorker_Work_BadRequestCancels(t *testing.T) {
	mock, w := newTestWorker(t)
	req := newRequest()

	mock.EXPECT().Enroll(gomock.Any(), req).Return(enrollment.Result{}, serrors.With(serrors.ErrBadRequest, "too many"))

	err := w.Work(context.Background(), makeJob(2, req))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEnrollmentWorker_Work_RateLimitedSnoozes(t *testing.T) {
	mock, w := newTestWorker(t)
	req := newRequest()

	limited := serrors.Wrap(enrollment.ErrDirectoryLookup,
		serrors.With(serrors.ErrRateLimited, "slow down"), "could not look up subscribers")
	mock.EXPECT().Enroll(gomock.Any(), req).Return(enrollment.Result{}, limited)

	err := w.Work(context.Background(), makeJob(3, req))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 10*time.Second, snoozeErr.Duration)
}

func TestEnrollmentWorker_Work_GenericErrorWrapped(t *testing.T) {
	mock, w := newTestWorker(t)
	req := newRequest()

	writeErr := serrors.Wrap(enrollment.ErrLinkWrite, errors.New("boom"), "could not add subscribers")
	mock.EXPECT().Enroll(gomock.Any(), req).Return(enrollment.Result{}, writeErr)

	err := w.Work(context.Background(), makeJob(4, req))
	require.Error(t, err)
	require.ErrorIs(t, err, enrollment.ErrLinkWrite)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestEnrollmentWorker_Timeout(t *testing.T) {
	_, w := newTestWorker(t)
	require.Equal(t, time.Minute, w.Timeout(makeJob(5, newRequest())))
}
