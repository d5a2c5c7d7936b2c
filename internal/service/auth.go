package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Единственная пара логин/пароль, которую принимает сервер по умолчанию.
const (
	DefaultUsername = "test"
	DefaultPassword = "test123"
)

// ErrInvalidCredentials — логин или пароль не совпали.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialChecker — стратегия проверки логина и пароля.
type CredentialChecker interface {
	Check(username, password string) bool
}

// CredentialCheckerFunc позволяет использовать обычную функцию как CredentialChecker.
type CredentialCheckerFunc func(username, password string) bool

// Check вызывает f(username, password).
func (f CredentialCheckerFunc) Check(username, password string) bool {
	return f(username, password)
}

// StaticCredentials принимает ровно одну пару. Пароль хранится только как bcrypt-хеш.
type StaticCredentials struct {
	username string
	hash     []byte
}

// NewStaticCredentials хеширует пароль и возвращает проверку для одной пары.
func NewStaticCredentials(username, password string) (*StaticCredentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &StaticCredentials{username: username, hash: hash}, nil
}

// Check сравнивает логин за постоянное время, пароль — через bcrypt.
func (c *StaticCredentials) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return userOK && passOK
}

// AuthService проверяет учётные данные. Сессий и токенов не выдаёт.
type AuthService struct {
	checker CredentialChecker
}

// NewAuthService создаёт сервис с переданной стратегией проверки.
func NewAuthService(checker CredentialChecker) *AuthService {
	return &AuthService{checker: checker}
}

// Authenticate возвращает ErrInvalidCredentials, если пара не принята стратегией.
func (s *AuthService) Authenticate(_ context.Context, username, password string) error {
	if !s.checker.Check(username, password) {
		return ErrInvalidCredentials
	}
	return nil
}
