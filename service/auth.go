package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-solver-api/identity"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/google/uuid"
)

const accessTokenLifetime = 24 * time.Hour

type Auth struct {
	agentRepo i.AgentRepo
	tokenizer i.Tokenizer
}

func NewAuthService(agentRepo i.AgentRepo, tokenizer i.Tokenizer) (i.Authenticator, error) {
	return &Auth{
		agentRepo: agentRepo,
		tokenizer: tokenizer,
	}, nil
}

func (a *Auth) Register(username, password string) error {
	agentConfig := identity.AgentConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	agent, err := identity.NewAgent(agentConfig)
	if err != nil {
		return err
	}

	err = a.agentRepo.Save(agent)
	if err != nil {
		return err
	}

	return nil
}

func (a *Auth) SignIn(username, password string) (*identity.Agent, string, error) {
	agent, err := a.agentRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !agent.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"agentID":  agent.ID,
		"username": agent.Username,
	}, accessTokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return agent, token, nil
}
