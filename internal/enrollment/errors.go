package enrollment

import "topics/pkg/serrors"

var (
	// ErrTopicProvisioning indicates the topic was absent and could not be created.
	ErrTopicProvisioning = serrors.NewKind("TOPIC_PROVISIONING_FAILED")
	// ErrDirectoryLookup indicates the subscriber directory could not be searched.
	ErrDirectoryLookup = serrors.NewKind("DIRECTORY_LOOKUP_FAILED")
	// ErrLinkWrite indicates the enrollment links could not be persisted. Nothing
	// was enrolled when it is returned.
	ErrLinkWrite = serrors.NewKind("LINK_WRITE_FAILED")
)
