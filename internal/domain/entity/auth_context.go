package entity

import "github.com/google/uuid"

// AuthMode distinguishes a signed-in user from a demo visitor.
type AuthMode string

const (
	AuthModeReal AuthMode = "real"
	AuthModeDemo AuthMode = "demo"
)

// DemoFixtures is the canned state served to demo sessions.
type DemoFixtures struct {
	Services []string
}

// AuthContext identifies who a request acts for. It is resolved once per request and passed
// explicitly to use cases.
type AuthContext struct {
	Mode   AuthMode
	UserID uuid.UUID
	Demo   *DemoFixtures
}

// NewRealAuthContext builds the context of an authenticated user.
func NewRealAuthContext(userID uuid.UUID) *AuthContext {
	return &AuthContext{Mode: AuthModeReal, UserID: userID}
}

// NewDemoAuthContext builds the context of a demo visitor.
func NewDemoAuthContext(userID uuid.UUID, fixtures *DemoFixtures) *AuthContext {
	return &AuthContext{Mode: AuthModeDemo, UserID: userID, Demo: fixtures}
}

// IsReal reports whether the context belongs to an authenticated user.
func (a *AuthContext) IsReal() bool {
	return a != nil && a.Mode == AuthModeReal
}

// IsDemo reports whether the context belongs to a demo visitor.
func (a *AuthContext) IsDemo() bool {
	return a != nil && a.Mode == AuthModeDemo
}
