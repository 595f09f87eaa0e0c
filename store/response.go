package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/lifeline-net/lifeline-api/schema"
)

var (
	ErrRequestNotOpen   = fmt.Errorf("the request is no longer accepting responses")
	ErrRequestClosed    = fmt.Errorf("the request is already closed")
	ErrNotRequestOwner  = fmt.Errorf("only the requester may complete a response")
	ErrInvalidAction    = fmt.Errorf("unknown response action")
	ErrInvalidRating    = fmt.Errorf("rating must be between 1 and 5")
	ErrUnitsNotPositive = fmt.Errorf("provided units must be positive")
)

type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionDecline ResponseAction = "decline"
)

// fallback when the notified or responded timestamp is missing
const defaultResponseMinutes = 30

// ListResponses returns all responses of a request
func (s *LifelineStore) ListResponses(requestID string) ([]schema.Response, error) {
	responses := []schema.Response{}
	if err := s.ormDB.Where("request_id = ?", requestID).
		Order("notified_at asc").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

// GetResponse returns the single response of a (request, responder)
// pair, if any.
func (s *LifelineStore) GetResponse(requestID, responder string) (*schema.Response, error) {
	var resp schema.Response
	if err := s.ormDB.Where("request_id = ? AND responder = ?", requestID, responder).
		First(&resp).Error; err != nil {
		return nil, err
	}
	return &resp, nil
}

// Respond records a contributor's accept or decline against an open
// request. The request row is locked for the duration so concurrent
// responses and completions serialize per request. A decline invokes
// the reliability scorer immediately.
func (s *LifelineStore) Respond(requestID, responder string, action ResponseAction, unitsOffered int) (*schema.Response, error) {
	if action != ActionAccept && action != ActionDecline {
		return nil, ErrInvalidAction
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var req schema.EmergencyRequest
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", requestID).First(&req).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if req.Status != schema.RequestOpen {
		tx.Rollback()
		return nil, ErrRequestNotOpen
	}

	now := time.Now()

	// at most one response row per (request, responder): reuse the
	// notification row when there is one
	var resp schema.Response
	err := tx.Where("request_id = ? AND responder = ?", req.ID, responder).First(&resp).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		resp = schema.Response{
			ID:         uuid.New(),
			RequestID:  req.ID,
			Responder:  responder,
			NotifiedAt: now,
		}
	case err != nil:
		tx.Rollback()
		return nil, err
	}

	responseMinutes := float64(0)
	if !resp.NotifiedAt.IsZero() {
		responseMinutes = now.Sub(resp.NotifiedAt).Minutes()
	}
	resp.RespondedAt = &now

	switch action {
	case ActionAccept:
		resp.Status = schema.ResponseAccepted
		if unitsOffered > 0 {
			resp.UnitsOffered = unitsOffered
		} else {
			resp.UnitsOffered = 1
		}

		if err := tx.Model(schema.EmergencyRequest{}).
			Where("id = ? AND status = ?", req.ID, schema.RequestOpen).
			Update("status", schema.RequestMatching).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

	case ActionDecline:
		resp.Status = schema.ResponseDeclined

		var c schema.Contributor
		if err := tx.Where("account_number = ?", responder).First(&c).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		s.params.OnResponse(&c, false, responseMinutes)
		if err := tx.Save(&c).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Save(&resp).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &resp, nil
}

// CompleteResponse marks one responder's contribution as delivered.
// It scores the responder, stamps a blood donor's last donation date,
// credits the requesting organization with an audit log entry and
// advances the request to partially_fulfilled or fulfilled. The whole
// transition runs under a row lock on the request so two concurrent
// completions cannot both pass the fulfillment threshold.
//
// Completing without a matching response row is a no-op: the request
// is returned unchanged.
func (s *LifelineStore) CompleteResponse(requestID, requester, responder string, unitsProvided, rating int) (*schema.EmergencyRequest, error) {
	if unitsProvided <= 0 {
		return nil, ErrUnitsNotPositive
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var req schema.EmergencyRequest
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", requestID).First(&req).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if req.Requester != requester {
		tx.Rollback()
		return nil, ErrNotRequestOwner
	}
	if !req.Status.Completable() {
		tx.Rollback()
		return nil, ErrRequestClosed
	}

	var resp schema.Response
	err := tx.Where("request_id = ? AND responder = ?", req.ID, responder).First(&resp).Error
	if gorm.IsRecordNotFoundError(err) {
		tx.Rollback()
		return &req, nil
	} else if err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	resp.Status = schema.ResponseCompleted
	resp.CompletedAt = &now
	resp.UnitsProvided = unitsProvided
	resp.Rating = rating
	if err := tx.Save(&resp).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var c schema.Contributor
	if err := tx.Where("account_number = ?", responder).First(&c).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	responseMinutes := float64(defaultResponseMinutes)
	if resp.RespondedAt != nil && !resp.NotifiedAt.IsZero() {
		responseMinutes = resp.RespondedAt.Sub(resp.NotifiedAt).Minutes()
	}
	s.params.OnResponse(&c, true, responseMinutes)

	if req.ResourceType == schema.ResourceBlood && c.Role == schema.RoleDonor {
		donated := now
		c.LastDonationAt = &donated
	}

	if err := tx.Save(&c).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	credits := s.params.CreditsEarned(&req, &resp)

	var owner schema.Contributor
	if err := tx.Where("account_number = ?", requester).First(&owner).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	owner.CreditBalance += credits
	if err := tx.Save(&owner).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	req.UnitsFulfilled += unitsProvided
	if req.UnitsFulfilled >= req.UnitsNeeded {
		req.Status = schema.RequestFulfilled
		req.FulfilledAt = &now
		req.FulfilledBy = responder
	} else {
		req.Status = schema.RequestPartiallyFulfilled
	}
	if err := tx.Save(&req).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// the audit log lives in mongo and sits outside the relational
	// transaction; a failed append must not undo a committed
	// completion
	if err := s.mongo.AppendContribution(schema.ContributionLog{
		AccountNumber: requester,
		RequestID:     req.ID.String(),
		Type:          schema.ContributionFulfillment,
		CreditsEarned: credits,
		Description:   fmt.Sprintf("Fulfilled %s request", req.ResourceType),
		CreatedAt:     now,
	}); err != nil {
		log.WithField("prefix", "store").WithError(err).
			Error("append contribution log")
	}

	return &req, nil
}
