// Package auth is the access gate: it resolves a credential pair to a
// role-tagged session and turns sessions into signed bearer tokens. The
// record stores never consult it; scoping a patient login to its own
// records is the caller's job.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/util"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultTokenTTL bounds how long an issued session token stays valid.
const DefaultTokenTTL = 12 * time.Hour

// Gate authenticates against a fixed user directory. Passwords are digested
// at construction; the gate never holds plaintext.
type Gate struct {
	users    []model.User
	tokenTTL time.Duration
}

// NewGate builds a gate over the given seed credentials.
func NewGate(seed []model.SeedCredential) *Gate {
	users := make([]model.User, 0, len(seed))
	for _, cred := range seed {
		u := cred.User
		u.Password = util.HashPassword(cred.Password)
		users = append(users, u)
	}
	return &Gate{users: users, tokenTTL: DefaultTokenTTL}
}

// Authenticate resolves a credential pair to a session.
func (g *Gate) Authenticate(email, password string) (model.Session, error) {
	for _, u := range g.users {
		if u.Email != email {
			continue
		}
		if !util.VerifyPassword(password, u.Password) {
			break
		}
		return model.Session{
			UserID:    u.ID,
			Role:      u.Role,
			Name:      u.Name,
			PatientID: u.PatientID,
		}, nil
	}
	return model.Session{}, ErrInvalidCredentials
}

type sessionClaims struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	PatientID string `json:"patient_id,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs a session into an HS256 bearer token.
func (g *Gate) IssueToken(session model.Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role:      session.Role,
		Name:      session.Name,
		PatientID: session.PatientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(util.GetJWTSecretByte())
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseSession validates a bearer token and recovers the session it carries.
func (g *Gate) ParseSession(tokenString string) (model.Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return util.GetJWTSecretByte(), nil
	})
	if err != nil {
		return model.Session{}, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return model.Session{}, errors.New("invalid session token")
	}
	return model.Session{
		UserID:    claims.Subject,
		Role:      claims.Role,
		Name:      claims.Name,
		PatientID: claims.PatientID,
	}, nil
}
