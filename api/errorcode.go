package api

import "github.com/lifeline-net/lifeline-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrContributorTaken.Error(),
		1101: "contributor not found",
		1102: store.ErrOrganizationNeeded.Error(),

		1200: store.ErrDuplicateOpenRequest.Error(),
		1201: store.ErrRequestNotOpen.Error(),
		1202: "request not found",
		1203: store.ErrRequestClosed.Error(),
		1204: store.ErrNotRequestOwner.Error(),
		1205: store.ErrInvalidAction.Error(),
		1206: "response not found",

		1300: store.ErrMissingBloodGroup.Error(),
		1301: store.ErrInvalidUnits.Error(),
		1302: store.ErrInvalidRating.Error(),
		1303: store.ErrInvalidResourceType.Error(),
		1304: store.ErrInvalidUrgency.Error(),
		1305: store.ErrInvalidRole.Error(),
		1306: store.ErrDonorWithoutGroup.Error(),
		1307: store.ErrInvalidBloodGroup.Error(),
		1308: store.ErrUnitsNotPositive.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorContributorTaken     = errorJSON(1100)
	errorContributorNotFound  = errorJSON(1101)
	errorOrganizationRequired = errorJSON(1102)

	errorDuplicateOpenRequest = errorJSON(1200)
	errorRequestNotOpen       = errorJSON(1201)
	errorRequestNotFound      = errorJSON(1202)
	errorRequestClosed        = errorJSON(1203)
	errorNotRequestOwner      = errorJSON(1204)
	errorInvalidAction        = errorJSON(1205)
	errorResponseNotFound     = errorJSON(1206)

	errorMissingBloodGroup   = errorJSON(1300)
	errorInvalidUnits        = errorJSON(1301)
	errorInvalidRating       = errorJSON(1302)
	errorInvalidResourceType = errorJSON(1303)
	errorInvalidUrgency      = errorJSON(1304)
	errorInvalidRole         = errorJSON(1305)
	errorDonorWithoutGroup   = errorJSON(1306)
	errorInvalidBloodGroup   = errorJSON(1307)
	errorUnitsNotPositive    = errorJSON(1308)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
