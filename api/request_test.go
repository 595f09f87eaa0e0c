package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	"github.com/lifeline-net/lifeline-api/api/mocks"
	"github.com/lifeline-net/lifeline-api/background"
	"github.com/lifeline-net/lifeline-api/match"
	"github.com/lifeline-net/lifeline-api/schema"
	"github.com/lifeline-net/lifeline-api/store"
)

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeContributorMiddleware())
	router.POST("/requests", s.createRequest)
	router.GET("/requests", s.listRequests)
	router.GET("/requests/:requestID", s.getRequest)
	router.POST("/requests/:requestID/responses", s.respond)
	router.PATCH("/requests/:requestID/responses/:responder", s.completeResponse)
	return router
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{
		store:    a,
		policy:   match.DefaultPolicy,
		notifier: background.NewLoggedNotificationCenter(),
	}

	hospital := &schema.Contributor{
		AccountNumber: "hospital-1",
		Name:          "City Hospital",
		Role:          schema.RoleHospital,
		City:          "Kathmandu",
	}
	a.EXPECT().GetContributor(gomock.Any()).Return(hospital, nil).Times(1)

	req := &schema.EmergencyRequest{
		ID:           uuid.New(),
		Requester:    "hospital-1",
		ResourceType: schema.ResourceBlood,
		BloodGroup:   schema.BloodONegative,
		Urgency:      schema.UrgencyCritical,
		Status:       schema.RequestOpen,
	}
	a.EXPECT().CreateRequest("hospital-1", gomock.Any()).Return(req, nil).Times(1)
	a.EXPECT().MatchContributors(req).Return(match.Result{
		Contributors: []schema.Contributor{
			{AccountNumber: "donor-1"},
			{AccountNumber: "donor-2"},
		},
		Expanded: true,
	}, nil).Times(1)
	a.EXPECT().RecordNotifications(req.ID.String(), []string{"donor-1", "donor-2"}).Return(nil).Times(1)

	body := `{"resource_type":"blood","blood_group":"O-","units_needed":2,"urgency":"critical"}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("POST", "/requests", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Notified int `json:"notified"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, 2, resp.Notified, "wrong notified count")
}

func TestCreateRequestByIndividual(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
	}, nil).Times(1)

	body := `{"resource_type":"blood","blood_group":"A+","units_needed":1,"urgency":"normal"}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("POST", "/requests", strings.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestCreateRequestDuplicate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "hospital-1",
		Role:          schema.RoleHospital,
	}, nil).Times(1)
	a.EXPECT().CreateRequest("hospital-1", gomock.Any()).
		Return(nil, store.ErrDuplicateOpenRequest).Times(1)

	body := `{"resource_type":"oxygen","units_needed":3,"urgency":"urgent"}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("POST", "/requests", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestGetRequestAsEligibleDonor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a, policy: match.DefaultPolicy}

	donor := &schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
		BloodGroup:    schema.BloodONegative,
		City:          "Kathmandu",
		IsAvailable:   true,
	}
	a.EXPECT().GetContributor(gomock.Any()).Return(donor, nil).Times(1)

	req := &schema.EmergencyRequest{
		ID:           uuid.New(),
		Requester:    "hospital-1",
		ResourceType: schema.ResourceBlood,
		BloodGroup:   schema.BloodAPositive,
		Status:       schema.RequestOpen,
		City:         "Kathmandu",
	}
	a.EXPECT().GetRequest(req.ID.String()).Return(req, nil).Times(1)
	a.EXPECT().ListResponses(req.ID.String()).Return([]schema.Response{}, nil).Times(1)
	a.EXPECT().GetResponse(req.ID.String(), "donor-1").
		Return(nil, gorm.ErrRecordNotFound).Times(1)

	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("GET", "/requests/"+req.ID.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		CanRespond bool `json:"can_respond"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.True(t, resp.CanRespond, "an eligible donor should be offered the request")
}

func TestGetRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
	}, nil).Times(1)
	a.EXPECT().GetRequest(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("GET", "/requests/"+uuid.New().String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestRespondAccept(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
	}, nil).Times(1)

	requestID := uuid.New()
	a.EXPECT().Respond(requestID.String(), "donor-1", store.ActionAccept, 2).
		Return(&schema.Response{
			RequestID:    requestID,
			Responder:    "donor-1",
			Status:       schema.ResponseAccepted,
			UnitsOffered: 2,
		}, nil).Times(1)

	body := `{"action":"accept","units_offered":2}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("POST", "/requests/"+requestID.String()+"/responses", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Response `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, schema.ResponseAccepted, resp.Result.Status, "wrong response status")
}

func TestRespondOnClosedRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
	}, nil).Times(1)
	a.EXPECT().Respond(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrRequestNotOpen).Times(1)

	body := `{"action":"accept"}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("POST", "/requests/"+uuid.New().String()+"/responses", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestCompleteResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "hospital-1",
		Role:          schema.RoleHospital,
	}, nil).Times(1)

	requestID := uuid.New()
	a.EXPECT().CompleteResponse(requestID.String(), "hospital-1", "donor-1", 2, 5).
		Return(&schema.EmergencyRequest{
			ID:             requestID,
			Status:         schema.RequestFulfilled,
			UnitsFulfilled: 2,
		}, nil).Times(1)

	body := `{"units_provided":2,"rating":5}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("PATCH", "/requests/"+requestID.String()+"/responses/donor-1", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.EmergencyRequest `json:"result"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	assert.Equal(t, schema.RequestFulfilled, resp.Result.Status, "wrong request status")
}

func TestCompleteResponseByIndividual(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "donor-1",
		Role:          schema.RoleDonor,
	}, nil).Times(1)

	body := `{"units_provided":1,"rating":4}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("PATCH", "/requests/"+uuid.New().String()+"/responses/donor-1", strings.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestCompleteResponseNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockLifelineCore(ctl)
	s := Server{store: a}

	a.EXPECT().GetContributor(gomock.Any()).Return(&schema.Contributor{
		AccountNumber: "hospital-2",
		Role:          schema.RoleHospital,
	}, nil).Times(1)
	a.EXPECT().CompleteResponse(gomock.Any(), "hospital-2", "donor-1", 1, 4).
		Return(nil, store.ErrNotRequestOwner).Times(1)

	body := `{"units_provided":1,"rating":4}`
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, httptest.NewRequest("PATCH", "/requests/"+uuid.New().String()+"/responses/donor-1", strings.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
