package enrollment

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"topics/pkg/domain"
)

// JobArgs carries an enrollment request through River. Identical requests that
// have not finished yet are inserted once.
type JobArgs struct {
	OrganizationID uuid.UUID `json:"organizationId" river:"unique"`
	EnvironmentID  uuid.UUID `json:"environmentId"  river:"unique"`
	TopicKey       string    `json:"topicKey"       river:"unique"`
	Subscribers    []string  `json:"subscribers"    river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs builds the job arguments for a normalized request.
func NewJobArgs(req Request, maxAttempts int) JobArgs {
	subscribers := make([]string, 0, len(req.Subscribers))
	for _, id := range req.Subscribers {
		subscribers = append(subscribers, string(id))
	}

	return JobArgs{
		OrganizationID: uuid.UUID(req.Scope.OrganizationID),
		EnvironmentID:  uuid.UUID(req.Scope.EnvironmentID),
		TopicKey:       string(req.TopicKey),
		Subscribers:    subscribers,
		maxAttempts:    maxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the enrollment worker.
func (args JobArgs) Kind() string { return "EnrollSubscribersJob" }

// InsertOpts returns the River options used when enqueueing the job.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Request converts the job back into an enrollment request.
func (args JobArgs) Request() Request {
	subscribers := make([]domain.ExternalSubscriberID, 0, len(args.Subscribers))
	for _, id := range args.Subscribers {
		subscribers = append(subscribers, domain.ExternalSubscriberID(id))
	}

	return Request{
		Scope: domain.Scope{
			OrganizationID: domain.OrganizationID(args.OrganizationID),
			EnvironmentID:  domain.EnvironmentID(args.EnvironmentID),
		},
		TopicKey:    domain.TopicKey(args.TopicKey),
		Subscribers: subscribers,
	}
}
