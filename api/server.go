package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifeline-net/lifeline-api/background"
	"github.com/lifeline-net/lifeline-api/logmodule"
	"github.com/lifeline-net/lifeline-api/match"
	"github.com/lifeline-net/lifeline-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.LifelineCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// matching policy for the can-respond check
	policy match.Policy

	// notification fan-out
	notifier background.NotificationCenter
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         store.NewLifelineStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		policy:        match.DefaultPolicy,
		notifier:      background.NewLoggedNotificationCenter(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	authRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.auth")))
	{
		authRoute.POST("", s.requestJWT)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	contributorRoute := apiRoute.Group("/contributors")
	{
		contributorRoute.POST("", s.contributorRegister)
	}

	contributorRoute.Use(s.recognizeContributorMiddleware())
	{
		contributorRoute.GET("/me", s.contributorDetail)
		contributorRoute.PATCH("/me", s.contributorUpdateProfile)
		contributorRoute.POST("/me/availability", s.toggleAvailability)
		contributorRoute.GET("/me/contributions", s.listContributions)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.recognizeContributorMiddleware())
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/nearby", s.nearbyRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.POST("/:requestID/responses", s.respond)
		requestRoute.PATCH("/:requestID/responses/:responder", s.completeResponse)
	}

	networkRoute := apiRoute.Group("/network")
	networkRoute.Use(s.recognizeContributorMiddleware())
	{
		networkRoute.GET("", s.network)
	}

	partnershipRoute := apiRoute.Group("/partnerships")
	partnershipRoute.Use(s.recognizeContributorMiddleware())
	{
		partnershipRoute.POST("", s.createPartnership)
		partnershipRoute.GET("", s.listPartnerships)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/network", s.metricNetworkStats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Lifeline 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func (s *Server) metricNetworkStats(c *gin.Context) {
	stats, err := s.store.NetworkStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": stats})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
