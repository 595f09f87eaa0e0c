package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-net/lifeline-api/store"
)

// contributorRegister is the API for registering a new contributor
func (s *Server) contributorRegister(c *gin.Context) {
	logger := log.WithField("api", "contributorRegister")
	accountNumber := c.GetString("requester")

	var params store.ContributorParams
	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	contributor, err := s.store.CreateContributor(accountNumber, params)
	if err != nil {
		switch err {
		case store.ErrInvalidRole:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRole)
		case store.ErrDonorWithoutGroup:
			abortWithEncoding(c, http.StatusBadRequest, errorDonorWithoutGroup)
		case store.ErrContributorTaken:
			abortWithEncoding(c, http.StatusForbidden, errorContributorTaken)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": contributor,
	})
}

// contributorDetail is the API to query the caller's own account
func (s *Server) contributorDetail(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": contributor,
	})
}

// contributorUpdateProfile is the API to edit profile fields
func (s *Server) contributorUpdateProfile(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var update store.ProfileUpdate
	if err := c.BindJSON(&update); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.UpdateContributorProfile(accountNumber, update); err != nil {
		if err == store.ErrInvalidBloodGroup {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidBloodGroup)
			return
		}
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// toggleAvailability flips the caller in or out of the matching pool
func (s *Server) toggleAvailability(c *gin.Context) {
	accountNumber := c.GetString("requester")

	available, err := s.store.ToggleAvailability(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// listContributions is the API for the caller's credit audit trail
func (s *Server) listContributions(c *gin.Context) {
	accountNumber := c.GetString("requester")

	entries, err := s.mongoStore.ListContributions(accountNumber, 10)
	if shouldInterupt(err, c) {
		return
	}

	total, err := s.mongoStore.TotalCreditsEarned(accountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contributions": entries,
		"total_credits": total,
	})
}
