package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/lifeline-net/lifeline-api/schema"
	"github.com/lifeline-net/lifeline-api/store"
)

// createPartnership is the API for linking two organizations
func (s *Server) createPartnership(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}

	var params struct {
		Partner string                 `json:"partner"`
		Type    schema.PartnershipType `json:"partnership_type"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	partnership, err := s.store.CreatePartnership(contributor.AccountNumber, params.Partner, params.Type)
	if err != nil {
		switch {
		case err == store.ErrOrganizationNeeded:
			abortWithEncoding(c, http.StatusForbidden, errorOrganizationRequired)
		case gorm.IsRecordNotFoundError(err):
			abortWithEncoding(c, http.StatusNotFound, errorContributorNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": partnership})
}

// listPartnerships is the API for an organization's partnerships
func (s *Server) listPartnerships(c *gin.Context) {
	contributor, ok := currentContributor(c)
	if !ok {
		return
	}

	partnerships, err := s.store.ListPartnerships(contributor.AccountNumber)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"partnerships": partnerships})
}
