package logic

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/privops/elevate/logger"
	"github.com/privops/elevate/models"
)

// FormatError - takes an error and shapes an ErrorResponse with the right code
func FormatError(err error, errType string) models.ErrorResponse {
	var status int
	switch errType {
	case "badrequest":
		status = http.StatusBadRequest
	case "notfound":
		status = http.StatusNotFound
	case "unauthorized":
		status = http.StatusUnauthorized
	case "forbidden":
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
	}

	var rejection *PolicyRejection
	if errors.As(err, &rejection) {
		status = http.StatusBadRequest
	}

	return models.ErrorResponse{
		Message: err.Error(),
		Code:    status,
	}
}

// ReturnSuccessResponse - processes message and adds header
func ReturnSuccessResponse(response http.ResponseWriter, request *http.Request, message string) {
	var httpResponse models.SuccessResponse
	httpResponse.Code = http.StatusOK
	httpResponse.Message = message
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(http.StatusOK)
	json.NewEncoder(response).Encode(httpResponse)
}

// ReturnSuccessResponseWithJson - returns a success response with the given data payload
func ReturnSuccessResponseWithJson(response http.ResponseWriter, request *http.Request, data interface{}, message string) {
	var httpResponse models.SuccessResponse
	httpResponse.Code = http.StatusOK
	httpResponse.Message = message
	httpResponse.Response = data
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(http.StatusOK)
	json.NewEncoder(response).Encode(httpResponse)
}

// ReturnErrorResponse - processes error and adds header
func ReturnErrorResponse(response http.ResponseWriter, request *http.Request, errorMessage models.ErrorResponse) {
	httpResponse := &models.ErrorResponse{Code: errorMessage.Code, Message: errorMessage.Message}
	jsonResponse, err := json.Marshal(httpResponse)
	if err != nil {
		panic(err)
	}
	logger.Log(1, "processed request error:", errorMessage.Message)
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(errorMessage.Code)
	response.Write(jsonResponse)
}
