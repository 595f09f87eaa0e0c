package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/lifeline-net/lifeline-api/schema"
)

// NotificationCenter fans a new request out to matched contributors.
// The persisted Response rows are the system of record; actual
// push/SMS delivery happens outside this service.
type NotificationCenter interface {
	NotifyRequestMatched(req *schema.EmergencyRequest, accountNumbers []string) error
}

// LoggedNotificationCenter records the would-be deliveries in the log.
type LoggedNotificationCenter struct{}

func NewLoggedNotificationCenter() *LoggedNotificationCenter {
	return &LoggedNotificationCenter{}
}

func (l *LoggedNotificationCenter) NotifyRequestMatched(req *schema.EmergencyRequest, accountNumbers []string) error {
	log.WithFields(log.Fields{
		"prefix":        "notification",
		"request":       req.ID.String(),
		"resource_type": req.ResourceType,
		"urgency":       req.Urgency,
		"contributors":  len(accountNumbers),
	}).Info("notify matched contributors")

	return nil
}
