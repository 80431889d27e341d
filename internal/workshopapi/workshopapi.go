// Package workshopapi models a thin client for publishing a decoded
// level to a hypothetical workshop-upload service: a signed JWT
// identifies the uploading user, a websocket connection streams upload
// progress, and uploaded bytes are hashed for a content-addressed cache
// key so an unchanged level isn't re-uploaded.
package workshopapi

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"golang.org/x/crypto/blake2b"
)

// Claims identifies the uploading user by Steam ID; it does not name
// the level pack being published.
type Claims struct {
	jwt.RegisteredClaims
	SteamID string `json:"steamId"`
}

// SignUploadToken produces a short-lived JWT authorizing one upload,
// signed with HMAC-SHA256.
func SignUploadToken(secret []byte, steamID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SteamID: steamID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("workshopapi: sign upload token: %w", err)
	}
	return signed, nil
}

// ParseUploadToken validates and decodes a token produced by
// SignUploadToken.
func ParseUploadToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("workshopapi: parse upload token: %w", err)
	}
	return claims, nil
}

// CacheKey returns a content-addressed cache key for level pack bytes,
// so an identical upload from the same author (or a no-op re-publish)
// can be recognized without re-sending the payload.
func CacheKey(levelPackBytes []byte) (string, error) {
	sum := blake2b.Sum256(levelPackBytes)
	return fmt.Sprintf("%x", sum), nil
}

// ProgressFunc is called with the number of bytes sent so far each time
// an upload chunk completes.
type ProgressFunc func(sent, total int)

// Uploader streams a level pack to a workshop endpoint over a websocket
// connection, reporting progress as it goes.
type Uploader struct {
	conn *websocket.Conn
}

// Dial opens a websocket connection to a workshop upload endpoint,
// authenticating with the given signed JWT.
func Dial(ctx context.Context, endpoint, token string) (*Uploader, error) {
	dialer := websocket.Dialer{}
	header := map[string][]string{"Authorization": {"Bearer " + token}}

	conn, _, err := dialer.DialContext(ctx, endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("workshopapi: dial %s: %w", endpoint, err)
	}
	return &Uploader{conn: conn}, nil
}

// Close terminates the upload connection.
func (u *Uploader) Close() error {
	return u.conn.Close()
}

// Upload streams data to the connection in fixed-size chunks, invoking
// onProgress after each one.
func (u *Uploader) Upload(data []byte, chunkSize int, onProgress ProgressFunc) error {
	if chunkSize <= 0 {
		chunkSize = 64 * 1024
	}

	sent := 0
	for sent < len(data) {
		end := sent + chunkSize
		if end > len(data) {
			end = len(data)
		}
		if err := u.conn.WriteMessage(websocket.BinaryMessage, data[sent:end]); err != nil {
			return fmt.Errorf("workshopapi: send chunk at offset %d: %w", sent, err)
		}
		sent = end
		if onProgress != nil {
			onProgress(sent, len(data))
		}
	}

	if err := u.conn.WriteMessage(websocket.TextMessage, []byte("done")); err != nil {
		return fmt.Errorf("workshopapi: send completion marker: %w", err)
	}
	return nil
}
