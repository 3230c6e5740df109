package i

import (
	"github.com/beka-birhanu/maze-solver-api/identity"
)

// Authenticator manages agent accounts and issues their access tokens.
type Authenticator interface {
	// Register creates an agent account from a username and plain password.
	Register(string, string) error

	// SignIn verifies credentials and returns the agent with a signed
	// access token.
	SignIn(string, string) (*identity.Agent, string, error)
}
