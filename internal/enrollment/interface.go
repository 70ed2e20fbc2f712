package enrollment

import (
	"context"

	"topics/pkg/domain"
)

//go:generate mockgen -package mockenrollment -source=interface.go -destination=mock/mockenrollment.go *
type Enroller interface {
	// Enroll links every requested identity found in the directory to the topic,
	// creating the topic on first reference.
	Enroll(ctx context.Context, req Request) (Result, error)
	// EnqueueEnroll validates req and schedules it for background enrollment.
	EnqueueEnroll(ctx context.Context, req Request) error
	CreateTopic(ctx context.Context, scope domain.Scope, key domain.TopicKey, name string) (*domain.Topic, error)
	Topic(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*TopicSummary, error)
}
