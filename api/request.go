package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-net/lifeline-api/schema"
	"github.com/lifeline-net/lifeline-api/store"
)

// createRequest is the API for an organization to raise an emergency
// request. Matching runs inline: the ranked contributors get notified
// response rows before the call returns.
func (s *Server) createRequest(c *gin.Context) {
	logger := log.WithField("api", "createRequest")

	contributor, ok := currentContributor(c)
	if !ok {
		return
	}
	if !contributor.Role.IsOrganization() {
		abortWithEncoding(c, http.StatusForbidden, errorOrganizationRequired)
		return
	}

	var params store.RequestParams
	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.store.CreateRequest(contributor.AccountNumber, params)
	if err != nil {
		switch err {
		case store.ErrInvalidResourceType:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidResourceType)
		case store.ErrInvalidUrgency:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidUrgency)
		case store.ErrInvalidUnits:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidUnits)
		case store.ErrMissingBloodGroup:
			abortWithEncoding(c, http.StatusBadRequest, errorMissingBloodGroup)
		case store.ErrDuplicateOpenRequest:
			abortWithEncoding(c, http.StatusConflict, errorDuplicateOpenRequest)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	result, err := s.store.MatchContributors(req)
	if shouldInterupt(err, c) {
		return
	}

	accounts := result.AccountNumbers()
	if err := s.store.RecordNotifications(req.ID.String(), accounts); shouldInterupt(err, c) {
		return
	}

	if err := s.notifier.NotifyRequestMatched(req, accounts); err != nil {
		logger.WithError(err).Error("notify matched contributors")
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   req,
		"notified": len(accounts),
	})
}

// getRequest is the API to view one request with its responses. For an
// individual caller it also reports their own response, if any, and
// whether they may still respond.
func (s *Server) getRequest(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}

	req, err := s.store.GetRequest(c.Param("requestID"))
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	responses, err := s.store.ListResponses(req.ID.String())
	if shouldInterupt(err, c) {
		return
	}

	payload := gin.H{
		"result":    req,
		"responses": responses,
	}

	if !contributor.Role.IsOrganization() {
		var own *schema.Response
		resp, err := s.store.GetResponse(req.ID.String(), contributor.AccountNumber)
		switch {
		case err == nil:
			own = resp
		case !gorm.IsRecordNotFoundError(err):
			if shouldInterupt(err, c) {
				return
			}
		}

		payload["my_response"] = own
		payload["can_respond"] = own == nil &&
			req.Status == schema.RequestOpen &&
			s.policy.IsEligible(contributor, req, time.Now())
	}

	c.JSON(http.StatusOK, payload)
}

// listRequests is the API to browse requests by status, resource and
// urgency filters.
func (s *Server) listRequests(c *gin.Context) {
	filter := store.RequestFilter{
		Status:       schema.RequestStatus(c.DefaultQuery("status", string(schema.RequestOpen))),
		ResourceType: schema.ResourceType(c.Query("resource")),
		Urgency:      schema.Urgency(c.Query("urgency")),
	}

	requests, err := s.store.ListRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// nearbyRequests is the API for the open requests an individual could
// serve: same city, role fit and blood compatibility, most urgent
// first.
func (s *Server) nearbyRequests(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}

	requests, err := s.store.ListEligibleRequests(contributor, 10)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// respond is the API for a contributor to accept or decline a request
func (s *Server) respond(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}

	var params struct {
		Action       store.ResponseAction `json:"action"`
		UnitsOffered int                  `json:"units_offered"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	resp, err := s.store.Respond(c.Param("requestID"), contributor.AccountNumber, params.Action, params.UnitsOffered)
	if err != nil {
		switch {
		case err == store.ErrInvalidAction:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAction)
		case err == store.ErrRequestNotOpen:
			abortWithEncoding(c, http.StatusConflict, errorRequestNotOpen)
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": resp})
}

// completeResponse is the API for the requester to confirm a
// responder's delivery with a rating
func (s *Server) completeResponse(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}
	if !contributor.Role.IsOrganization() {
		abortWithEncoding(c, http.StatusForbidden, errorOrganizationRequired)
		return
	}

	var params struct {
		UnitsProvided int `json:"units_provided"`
		Rating        int `json:"rating"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.store.CompleteResponse(
		c.Param("requestID"),
		contributor.AccountNumber,
		c.Param("responder"),
		params.UnitsProvided,
		params.Rating,
	)
	if err != nil {
		switch {
		case err == store.ErrUnitsNotPositive:
			abortWithEncoding(c, http.StatusBadRequest, errorUnitsNotPositive)
		case err == store.ErrInvalidRating:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating)
		case err == store.ErrNotRequestOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		case err == store.ErrRequestClosed:
			abortWithEncoding(c, http.StatusConflict, errorRequestClosed)
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req})
}
