package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// network is the API for the leaderboard and network statistics
func (s *Server) network(c *gin.Context) {
	topOrgs, err := s.store.TopOrganizations(10)
	if shouldInterupt(err, c) {
		return
	}

	topIndividuals, err := s.store.TopIndividuals(10)
	if shouldInterupt(err, c) {
		return
	}

	stats, err := s.store.NetworkStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"top_organizations": topOrgs,
		"top_contributors":  topIndividuals,
		"stats":             stats,
	})
}
