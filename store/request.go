package store

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/lifeline-net/lifeline-api/match"
	"github.com/lifeline-net/lifeline-api/schema"
)

var (
	ErrDuplicateOpenRequest = fmt.Errorf("an open request for this resource already exists")
	ErrMissingBloodGroup    = fmt.Errorf("a blood group is required for blood and plasma requests")
	ErrInvalidResourceType  = fmt.Errorf("unknown resource type")
	ErrInvalidUrgency       = fmt.Errorf("unknown urgency level")
	ErrInvalidUnits         = fmt.Errorf("unit count must be positive")
)

const (
	normalRequestTTL = 24 * time.Hour
	urgentRequestTTL = 12 * time.Hour
)

type RequestParams struct {
	ResourceType     schema.ResourceType `json:"resource_type"`
	BloodGroup       schema.BloodGroup   `json:"blood_group"`
	UnitsNeeded      int                 `json:"units_needed"`
	Urgency          schema.Urgency      `json:"urgency"`
	HospitalName     string              `json:"hospital_name"`
	PatientCondition string              `json:"patient_condition"`
}

type RequestFilter struct {
	Status       schema.RequestStatus
	ResourceType schema.ResourceType
	Urgency      schema.Urgency
	Limit        int
}

// CreateRequest validates and persists a new emergency request. The
// location is taken from the requester's profile. A second open
// request for the same (requester, resource, blood group) tuple is a
// conflict, enforced by a partial unique index.
func (s *LifelineStore) CreateRequest(requester string, params RequestParams) (*schema.EmergencyRequest, error) {
	if !params.ResourceType.Valid() {
		return nil, ErrInvalidResourceType
	}
	if !params.Urgency.Valid() {
		return nil, ErrInvalidUrgency
	}
	if params.UnitsNeeded <= 0 {
		return nil, ErrInvalidUnits
	}

	bloodGroup := schema.BloodGroup("")
	if params.ResourceType.RequiresBloodGroup() {
		if !params.BloodGroup.Valid() {
			return nil, ErrMissingBloodGroup
		}
		bloodGroup = params.BloodGroup
	}

	owner, err := s.GetContributor(requester)
	if err != nil {
		return nil, err
	}

	hospitalName := params.HospitalName
	if hospitalName == "" {
		hospitalName = owner.Name
	}

	ttl := normalRequestTTL
	if params.Urgency != schema.UrgencyNormal {
		ttl = urgentRequestTTL
	}

	now := time.Now()
	req := schema.EmergencyRequest{
		Requester:        requester,
		ResourceType:     params.ResourceType,
		BloodGroup:       bloodGroup,
		UnitsNeeded:      params.UnitsNeeded,
		Urgency:          params.Urgency,
		City:             owner.City,
		District:         owner.District,
		HospitalName:     hospitalName,
		PatientCondition: params.PatientCondition,
		Status:           schema.RequestOpen,
		ExpiresAt:        now.Add(ttl),
	}

	if err := s.ormDB.Create(&req).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateOpenRequest
		}
		return nil, err
	}

	return &req, nil
}

// GetRequest returns a request instance of a given id
func (s *LifelineStore) GetRequest(requestID string) (*schema.EmergencyRequest, error) {
	var req schema.EmergencyRequest
	if err := s.ormDB.Where("id = ?", requestID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests browses requests by optional status, resource and
// urgency filters, newest first.
func (s *LifelineStore) ListRequests(filter RequestFilter) ([]schema.EmergencyRequest, error) {
	query := s.ormDB.Model(schema.EmergencyRequest{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.Urgency != "" {
		query = query.Where("urgency = ?", filter.Urgency)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	requests := []schema.EmergencyRequest{}
	if err := query.Order("created_at desc").Limit(limit).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListEligibleRequests returns the open requests in a contributor's
// city that fit their role and, for donors, their blood group. This
// mirrors the matching filters in reverse; the feed never expands
// beyond the city.
func (s *LifelineStore) ListEligibleRequests(c *schema.Contributor, limit int) ([]schema.EmergencyRequest, error) {
	query := s.ormDB.Model(schema.EmergencyRequest{}).
		Where("status = ? AND city = ? AND requester <> ?",
			schema.RequestOpen, c.City, c.AccountNumber)

	switch c.Role {
	case schema.RoleDonor:
		if c.BloodGroup == "" {
			return []schema.EmergencyRequest{}, nil
		}
		supplies := match.BloodCompatibility[c.BloodGroup]
		groups := make([]string, 0, len(supplies))
		for _, g := range supplies {
			groups = append(groups, string(g))
		}
		query = query.Where("resource_type = ? AND blood_group IN (?)", schema.ResourceBlood, groups)
	case schema.RoleVolunteer:
		query = query.Where("resource_type = ?", schema.ResourceVolunteer)
	case schema.RoleAmbulance:
		query = query.Where("resource_type = ?", schema.ResourceAmbulance)
	default:
		query = query.Where("resource_type IN (?)",
			[]schema.ResourceType{schema.ResourcePlasma, schema.ResourceOxygen})
	}

	if limit <= 0 {
		limit = 10
	}

	requests := []schema.EmergencyRequest{}
	if err := query.
		Order("CASE urgency WHEN 'critical' THEN 3 WHEN 'urgent' THEN 2 ELSE 1 END DESC, created_at DESC").
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// MatchContributors runs the matching engine over the candidate pool
// of a request's city and district. When the search expanded beyond
// the city, the request is flagged as auto-expanded.
func (s *LifelineStore) MatchContributors(req *schema.EmergencyRequest) (match.Result, error) {
	pool := []schema.Contributor{}
	if err := s.ormDB.
		Where("is_available = ? AND account_number <> ? AND (city = ? OR district = ?)",
			true, req.Requester, req.City, req.District).
		Find(&pool).Error; err != nil {
		return match.Result{}, err
	}

	result := s.policy.Match(req, pool, time.Now())

	if result.Expanded && !req.AutoExpanded {
		if err := s.ormDB.Model(req).Update("auto_expanded", true).Error; err != nil {
			return match.Result{}, err
		}
		req.AutoExpanded = true
	}

	return result, nil
}

// RecordNotifications persists one notified Response row per matched
// contributor. A contributor already holding a row for the request
// keeps the original notification timestamp.
func (s *LifelineStore) RecordNotifications(requestID string, accountNumbers []string) error {
	req, err := s.GetRequest(requestID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, account := range accountNumbers {
		resp := schema.Response{
			RequestID:  req.ID,
			Responder:  account,
			Status:     schema.ResponseNotified,
			NotifiedAt: now,
		}
		if err := s.ormDB.Create(&resp).Error; err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				continue
			}
			return err
		}
	}

	return nil
}
