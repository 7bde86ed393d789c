package logic

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/privops/elevate/models"
	"github.com/privops/elevate/servercfg"
)

const (
	// MasterUser - principal name assumed when authenticating with the master key
	MasterUser       = "masteradministrator"
	Unauthorized_Msg = "unauthorized"
	Unauthorized_Err = models.Error(Unauthorized_Msg)
	Forbidden_Msg    = "forbidden"
	Forbidden_Err    = models.Error(Forbidden_Msg)
)

// SecurityCheck - middleware that authenticates the bearer token and stamps
// the resolved principal onto the request before the handler runs
func SecurityCheck(reqAdmin bool, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bearerToken := r.Header.Get("Authorization")
		principal, isAdmin, err := UserPermissions(bearerToken)
		if err != nil {
			ReturnErrorResponse(w, r, FormatError(err, "unauthorized"))
			return
		}
		if reqAdmin && !isAdmin {
			ReturnErrorResponse(w, r, FormatError(Forbidden_Err, "forbidden"))
			return
		}
		r.Header.Set("user", principal)
		next.ServeHTTP(w, r)
	}
}

// UserPermissions - resolves a bearer token to a principal id and admin flag
func UserPermissions(token string) (string, bool, error) {
	tokenSplit := strings.Split(token, " ")
	if len(tokenSplit) < 2 {
		return "", false, Unauthorized_Err
	}
	authToken := tokenSplit[1]
	if authenticateMaster(authToken) {
		return MasterUser, true, nil
	}
	claims, err := VerifyUserToken(authToken)
	if err != nil {
		return "", false, Unauthorized_Err
	}
	return claims.PrincipalID, claims.IsAdmin, nil
}

// CreateUserJWT - issues a signed token for the given principal
func CreateUserJWT(principalID string, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(servercfg.GetJwtValidityDuration())
	claims := &models.UserClaims{
		PrincipalID: principalID,
		IsAdmin:     isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "Elevate",
			Subject:   fmt.Sprintf("user|%s", principalID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey())
}

// VerifyUserToken - validates a signed user token and returns its claims
func VerifyUserToken(tokenString string) (*models.UserClaims, error) {
	claims := &models.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.PrincipalID == "" {
		return nil, Unauthorized_Err
	}
	return claims, nil
}

func authenticateMaster(tokenString string) bool {
	return tokenString == servercfg.GetMasterKey() && servercfg.GetMasterKey() != ""
}

func jwtSecretKey() []byte {
	return []byte(servercfg.GetMasterKey())
}
