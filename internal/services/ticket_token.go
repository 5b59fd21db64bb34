package services

import (
	"errors"
	"fmt"
	"time"

	"transit/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoTicketPayload is returned when the ticket screen is opened without a
// token.
var ErrNoTicketPayload = errors.New("no ticket payload")

const ticketTokenIssuer = "transit/book-ticket"

type ticketClaims struct {
	Draft     models.BookingDraft `json:"draft"`
	BookingID string              `json:"bid"`
	Seat      string              `json:"seat"`
	jwt.RegisteredClaims
}

// TicketTokenCodec carries a finished booking from the wizard redirect to the
// ticket screen as a signed, short-lived token. The signature only protects
// the payload in transit; it identifies nobody.
type TicketTokenCodec struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (c TicketTokenCodec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c TicketTokenCodec) Encode(p models.TicketPayload) (string, error) {
	if len(c.Secret) == 0 {
		return "", errors.New("ticket token secret is empty")
	}
	now := c.now()
	claims := ticketClaims{
		Draft:     p.Draft,
		BookingID: p.BookingID,
		Seat:      p.Seat,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   ticketTokenIssuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.TTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.Secret)
	if err != nil {
		return "", fmt.Errorf("sign ticket token: %w", err)
	}
	return signed, nil
}

// Decode verifies and unpacks a token. Callers treat any error the same as a
// missing payload.
func (c TicketTokenCodec) Decode(raw string) (models.TicketPayload, error) {
	if raw == "" {
		return models.TicketPayload{}, ErrNoTicketPayload
	}
	var claims ticketClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ticketTokenIssuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return models.TicketPayload{}, fmt.Errorf("decode ticket token: %w", err)
	}
	claims.Draft.Gender = models.ParseGender(string(claims.Draft.Gender))
	return models.TicketPayload{
		Draft:     claims.Draft,
		BookingID: claims.BookingID,
		Seat:      claims.Seat,
	}, nil
}
