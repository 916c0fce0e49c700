// Package auth stores the optional listings API credential in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/epibrowse/epibrowse/constant"
	"github.com/epibrowse/epibrowse/log"
	"github.com/zalando/go-keyring"
)

const user = "api-authorization"

// SetToken saves the value sent in the Authorization header.
// A bare token is stored as "Bearer <token>".
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if !strings.Contains(token, " ") {
		token = "Bearer " + token
	}
	return keyring.Set(constant.Epibrowse, user, token)
}

// DeleteToken removes the stored credential. Removing a missing credential is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.Epibrowse, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Authorization returns the stored header value, or "" when none is stored or the keyring is unavailable.
func Authorization() string {
	token, err := keyring.Get(constant.Epibrowse, user)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("keyring unavailable: %v", err)
		}
		return ""
	}
	return token
}
