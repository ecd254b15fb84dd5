package service

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tradbazar/pkg/errors"
)

const (
	CallRolePublisher  = "publisher"
	CallRoleSubscriber = "subscriber"
)

// CallToken is the signed credential a client presents to join a seller's
// realtime call channel.
type CallToken struct {
	Token     string    `json:"token"`
	Channel   string    `json:"channel"`
	UID       uint32    `json:"uid"`
	ExpiresAt time.Time `json:"expires_at"`
}

type callTokenClaims struct {
	Channel string `json:"channel"`
	UID     uint32 `json:"uid"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// CallTokenService issues HMAC-signed channel tokens for seller video calls.
type CallTokenService struct {
	appSecret string
	expiry    time.Duration
}

func NewCallTokenService(appSecret string, expiry time.Duration) *CallTokenService {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &CallTokenService{
		appSecret: appSecret,
		expiry:    expiry,
	}
}

// ChannelForSeller derives the canonical channel name for a seller.
func ChannelForSeller(sellerEmail string) string {
	return "seller_" + sellerEmail
}

// ParticipantUID maps an email to the stable numeric participant id the
// realtime provider expects.
func ParticipantUID(email string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(email))
	return h.Sum32()
}

func (s *CallTokenService) IssueToken(sellerEmail, participantEmail, role string) (*CallToken, error) {
	if sellerEmail == "" {
		return nil, errors.BadRequest("Seller email is required", nil)
	}
	if role != CallRolePublisher && role != CallRoleSubscriber {
		role = CallRoleSubscriber
	}

	channel := ChannelForSeller(sellerEmail)
	uid := ParticipantUID(participantEmail)
	expiresAt := time.Now().Add(s.expiry)

	claims := callTokenClaims{
		Channel: channel,
		UID:     uid,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   participantEmail,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.appSecret))
	if err != nil {
		return nil, errors.Internal("Failed to sign call token", err)
	}

	return &CallToken{
		Token:     signed,
		Channel:   channel,
		UID:       uid,
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyToken parses and validates a previously issued call token.
func (s *CallTokenService) VerifyToken(tokenString string) (*CallToken, error) {
	var claims callTokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.appSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("Invalid or expired call token", err)
	}

	return &CallToken{
		Token:     tokenString,
		Channel:   claims.Channel,
		UID:       claims.UID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
