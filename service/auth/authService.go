package authsvc

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"libraryapi/model"
	"libraryapi/util/hash"
)

var (
	ErrInvalidCreds = errors.New("invalid credentials")
	ErrUnauthorized = errors.New("unauthorized")
)

// Verifier checks a username/password pair.
type Verifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// TokenStore maps issued tokens to the username they were issued for. A zero
// expiresAt never expires.
type TokenStore interface {
	Put(ctx context.Context, token, username string, expiresAt time.Time) error
	Lookup(ctx context.Context, token string) (username string, ok bool, err error)
}

type Service interface {
	Login(ctx context.Context, req model.LoginReq) (string, error)
	// Authorize returns the username bound to token, or ErrUnauthorized.
	Authorize(ctx context.Context, token string) (string, error)
}

type Options struct {
	Secret string
	// TTL of issued tokens; 0 keeps them for the life of the store.
	TTL time.Duration
	Now func() time.Time
}

type service struct {
	v      Verifier
	tokens TokenStore
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func New(v Verifier, tokens TokenStore, opt Options) Service {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &service{v: v, tokens: tokens, secret: opt.Secret, ttl: opt.TTL, now: opt.Now}
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (string, error) {
	if !s.v.Verify(ctx, req.Username, req.Password) {
		return "", ErrInvalidCreds
	}

	now := s.now()
	token := Token(req.Username, now, s.secret)

	var exp time.Time
	if s.ttl > 0 {
		exp = now.Add(s.ttl)
	}
	if err := s.tokens.Put(ctx, token, req.Username, exp); err != nil {
		return "", err
	}
	return token, nil
}

func (s *service) Authorize(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	u, ok, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUnauthorized
	}
	return u, nil
}

// Token is the hex SHA-256 of username, unix seconds and secret.
func Token(username string, at time.Time, secret string) string {
	sum := sha256.Sum256([]byte(username + strconv.FormatInt(at.Unix(), 10) + secret))
	return hex.EncodeToString(sum[:])
}

// StaticVerifier accepts exactly one configured credential pair.
type StaticVerifier struct {
	username     string
	passwordHash string
}

func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	if username == "" {
		return nil, errors.New("empty username")
	}
	h, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{username: username, passwordHash: h}, nil
}

func (v *StaticVerifier) Verify(_ context.Context, username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) != 1 {
		return false
	}
	return hash.Check(v.passwordHash, password)
}
