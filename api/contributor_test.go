package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lifeline-net/lifeline-api/api/mocks"
	"github.com/lifeline-net/lifeline-api/schema"
	"github.com/lifeline-net/lifeline-api/store"
)

func TestContributorRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().CreateContributor(gomock.Any(), store.ContributorParams{
		Name:       "Asha",
		Phone:      "9841000000",
		Role:       schema.RoleDonor,
		City:       "Pokhara",
		District:   "Kaski",
		BloodGroup: schema.BloodBNegative,
	}).Return(&schema.Contributor{
		AccountNumber:    "donor-1",
		Name:             "Asha",
		Role:             schema.RoleDonor,
		BloodGroup:       schema.BloodBNegative,
		IsVerified:       true,
		ReliabilityIndex: 50,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.contributorRegister)

	body := `{"name":"Asha","phone":"9841000000","role":"donor","city":"Pokhara","district":"Kaski","blood_group":"B-"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Contributor `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, float64(50), resp.Result.ReliabilityIndex, "a fresh contributor should start at the baseline index")
	assert.True(t, resp.Result.IsVerified, "individuals register verified")
}

func TestContributorRegisterTwice(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().CreateContributor(gomock.Any(), gomock.Any()).
		Return(nil, store.ErrContributorTaken).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.contributorRegister)

	body := `{"name":"Asha","role":"donor","city":"Pokhara","blood_group":"B-"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestToggleAvailability(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
		IsAvailable:   true,
	}, nil).Times(1)
	a.EXPECT().ToggleAvailability(gomock.Any()).Return(false, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeContributorMiddleware())
	router.POST("/", s.toggleAvailability)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]bool
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.False(t, resp["available"], "availability should flip off")
}

func TestListContributions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: a, mongoStore: m}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
	}, nil).Times(1)
	m.EXPECT().ListContributions(gomock.Any(), int64(10)).Return([]schema.ContributionLog{
		{AccountNumber: "donor-1", Type: schema.ContributionFulfillment, CreditsEarned: 23},
	}, nil).Times(1)
	m.EXPECT().TotalCreditsEarned(gomock.Any()).Return(23, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeContributorMiddleware())
	router.GET("/", s.listContributions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Contributions []schema.ContributionLog `json:"contributions"`
		TotalCredits  int                      `json:"total_credits"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Len(t, resp.Contributions, 1, "wrong contribution count")
	assert.Equal(t, 23, resp.TotalCredits, "wrong credit total")
}

func TestRecognizeContributorUnregistered(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(nil, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeContributorMiddleware())
	router.GET("/", s.contributorDetail)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
}
