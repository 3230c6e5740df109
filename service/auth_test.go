package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type staticTokenizer struct{}

func (staticTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	return fmt.Sprintf("signed:%v", claims["username"]), nil
}

func (staticTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

func TestAuth(t *testing.T) {
	const strongPassword = "mM8#pQv!zL2@wX"

	t.Run("Registered agents can sign in and get a token", func(t *testing.T) {
		auth, err := NewAuthService(newMemAgentRepo(), staticTokenizer{})
		assert.NoError(t, err)

		assert.NoError(t, auth.Register("solver_bot", strongPassword))

		agent, token, err := auth.SignIn("solver_bot", strongPassword)
		assert.NoError(t, err)
		assert.Equal(t, "solver_bot", agent.Username)
		assert.Equal(t, 0, agent.Solved)
		assert.Equal(t, "signed:solver_bot", token)
	})

	t.Run("Rejects a wrong password", func(t *testing.T) {
		auth, err := NewAuthService(newMemAgentRepo(), staticTokenizer{})
		assert.NoError(t, err)

		assert.NoError(t, auth.Register("solver_bot", strongPassword))

		_, _, err = auth.SignIn("solver_bot", "wrong password")
		assert.EqualError(t, err, "invalid username or password")
	})

	t.Run("Rejects an unknown username with the same message", func(t *testing.T) {
		auth, err := NewAuthService(newMemAgentRepo(), staticTokenizer{})
		assert.NoError(t, err)

		_, _, err = auth.SignIn("nobody", strongPassword)
		assert.EqualError(t, err, "invalid username or password")
	})

	t.Run("Refuses to register a weak password", func(t *testing.T) {
		auth, err := NewAuthService(newMemAgentRepo(), staticTokenizer{})
		assert.NoError(t, err)

		assert.Error(t, auth.Register("solver_bot", "password"))
	})
}
