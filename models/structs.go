package models

import jwt "github.com/golang-jwt/jwt/v4"

// Error - the custom error type of the server
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrorResponse is struct for error
type ErrorResponse struct {
	Code    int
	Message string
}

// SuccessResponse is struct for sending a message with code and response data.
type SuccessResponse struct {
	Code     int
	Message  string
	Response interface{}
}

// UserClaims - claims carried by an API bearer token
type UserClaims struct {
	PrincipalID string `json:"principal_id"`
	IsAdmin     bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
