package ee

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// Credentials is the service-account material for the analytics service:
// an account identifier plus a private key, loaded once at startup.
type Credentials struct {
	Account    string
	privateKey []byte
}

// LoadCredentials reads the private key file. A missing account or an
// unreadable key file prevents the process from serving at all.
func LoadCredentials(account, keyFile string) (Credentials, error) {
	if account == "" {
		return Credentials{}, errors.New("analytics account is required")
	}
	if keyFile == "" {
		return Credentials{}, errors.New("analytics private key file is required")
	}
	key, err := os.ReadFile(keyFile)
	if err != nil {
		return Credentials{}, fmt.Errorf("read private key %q: %w", keyFile, err)
	}
	if len(key) == 0 {
		return Credentials{}, fmt.Errorf("private key %q is empty", keyFile)
	}
	return Credentials{Account: account, privateKey: key}, nil
}

// Sign attaches the account header and an HMAC-SHA256 signature over
// method, path and body.
func (c Credentials) Sign(req *http.Request, body []byte) {
	mac := hmac.New(sha256.New, c.privateKey)
	mac.Write([]byte(req.Method))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(req.URL.Path))
	mac.Write([]byte{'\n'})
	mac.Write(body)

	req.Header.Set("X-EE-Account", c.Account)
	req.Header.Set("X-EE-Signature", hex.EncodeToString(mac.Sum(nil)))
}
