package schema

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceBlood     ResourceType = "blood"
	ResourcePlasma    ResourceType = "plasma"
	ResourceOxygen    ResourceType = "oxygen"
	ResourceAmbulance ResourceType = "ambulance"
	ResourceVolunteer ResourceType = "volunteer"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceBlood, ResourcePlasma, ResourceOxygen, ResourceAmbulance, ResourceVolunteer:
		return true
	}
	return false
}

// RequiresBloodGroup reports whether a request of this type must carry
// a blood group.
func (t ResourceType) RequiresBloodGroup() bool {
	return t == ResourceBlood || t == ResourcePlasma
}

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyUrgent, UrgencyNormal:
		return true
	}
	return false
}

// Severity orders urgencies for ranking. Higher is more urgent.
func (u Urgency) Severity() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyUrgent:
		return 2
	case UrgencyNormal:
		return 1
	}
	return 0
}

type RequestStatus string

const (
	RequestOpen               RequestStatus = "open"
	RequestMatching           RequestStatus = "matching"
	RequestPartiallyFulfilled RequestStatus = "partially_fulfilled"
	RequestFulfilled          RequestStatus = "fulfilled"
	RequestCancelled          RequestStatus = "cancelled"
	RequestExpired            RequestStatus = "expired"
)

// Completable reports whether responses against the request may still
// be completed. Fulfilled, cancelled and expired are terminal.
func (s RequestStatus) Completable() bool {
	switch s {
	case RequestOpen, RequestMatching, RequestPartiallyFulfilled:
		return true
	}
	return false
}

// EmergencyRequest is an open call for a resource raised by an
// organization account.
type EmergencyRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Requester string    `json:"requester"`

	ResourceType ResourceType `json:"resource_type"`
	BloodGroup   BloodGroup   `json:"blood_group"`
	UnitsNeeded  int          `json:"units_needed" sql:"default:1"`
	Urgency      Urgency      `json:"urgency" sql:"default:'normal'"`

	City             string `json:"city"`
	District         string `json:"district"`
	HospitalName     string `json:"hospital_name"`
	PatientCondition string `json:"patient_condition"`

	Status       RequestStatus `json:"status" sql:"default:'open'"`
	AutoExpanded bool          `json:"auto_expanded"`

	UnitsFulfilled int    `json:"units_fulfilled"`
	FulfilledBy    string `json:"fulfilled_by"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FulfilledAt *time.Time `json:"fulfilled_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
}

type ResponseStatus string

const (
	ResponseNotified   ResponseStatus = "notified"
	ResponseAccepted   ResponseStatus = "accepted"
	ResponseDeclined   ResponseStatus = "declined"
	ResponseCompleted  ResponseStatus = "completed"
	ResponseNoResponse ResponseStatus = "no_response"
)

// Response links one request to one contributor. There is at most one
// row per (request, responder) pair: created on first notification and
// updated in place afterwards.
type Response struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID uuid.UUID `json:"request_id" gorm:"type:uuid;unique_index:response_one_per_responder"`
	Responder string    `json:"responder" gorm:"unique_index:response_one_per_responder"`

	Status ResponseStatus `json:"status" sql:"default:'notified'"`

	UnitsOffered  int `json:"units_offered" sql:"default:1"`
	UnitsProvided int `json:"units_provided"`

	NotifiedAt  time.Time  `json:"notified_at"`
	RespondedAt *time.Time `json:"responded_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// 1-5, set by the requester at completion
	Rating int `json:"rating"`
}
