package identity

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)
)

// Agent represents the BSON version of an API account for database storage.
// Agents are the solving clients under evaluation; Solved counts the mazes
// they have verifiably completed.
type Agent struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	Solved       int       `bson:"solved"`
}

// AgentConfig holds parameters for creating an Agent from a plain password.
type AgentConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewAgent creates a new Agent with the provided configuration.
func NewAgent(config AgentConfig) (*Agent, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(config.PlainPassword)
	if err != nil {
		return nil, err
	}

	return &Agent{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: passwordHash,
		Solved:       0,
	}, nil
}

// VerifyPassword verifies if the given password matches the stored hash.
func (a *Agent) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

// RecordSolve counts one verified goal-reaching replay.
func (a *Agent) RecordSolve() {
	a.Solved++
}

// validateUsername validates the username.
func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return errors.New("username too short")
	}
	if len(username) > maxUsernameLength {
		return errors.New("username too long")
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("Invalid username format")
	}
	return nil
}

// validatePassword checks the strength of the password.
func validatePassword(password string) error {
	result := zxcvbn.PasswordStrength(password, nil)
	if result.Score < minPasswordStrengthScore {
		return errors.New("week password")
	}
	return nil
}

// hashPassword generates a bcrypt hash for the given password.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}
