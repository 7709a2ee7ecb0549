package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-account-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors describing why token verification failed. A failed
// verification never yields a partial identity: callers get exactly one of
// these errors and no user ID. Match with [errors.Is].
var (
	// ErrTokenExpired is returned when the token's "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenSignatureInvalid is returned when the token's signature does
	// not verify against the configured sign key (a tampered or foreign token).
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenMalformed is returned when the token cannot be decoded at all,
	// or when its claims (issuer, subject) are missing or unusable.
	ErrTokenMalformed = errors.New("token is malformed")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Failures are normalised to the package sentinels so callers never have to
// inspect low-level JWT errors:
//   - past expiry                  → [ErrTokenExpired]
//   - bad signature                → [ErrTokenSignatureInvalid]
//   - anything else (undecodable,
//     wrong issuer, bad subject)   → [ErrTokenMalformed]
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, classifyJWTError(err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: error getting subject from token: %w", ErrTokenMalformed, err)
	}
	if userIDStr == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: error converting subject to UserID: %w", ErrTokenMalformed, err)
	}

	parsed := models.Token{Token: token, SignedString: tokenString, UserID: userID}
	if claims, ok := token.Claims.(*models.Token); ok {
		parsed.RegisteredClaims = claims.RegisteredClaims
	}

	return parsed, nil
}

// classifyJWTError maps golang-jwt parse errors onto the package sentinels.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
