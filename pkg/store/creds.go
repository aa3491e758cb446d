// Package store persists the credential cache on disk.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const credentialKey = "credential"

// ErrNoCredential is returned when the cache holds no credential.
var ErrNoCredential = errors.New("store: no cached credential")

// Record is one cached OAuth credential.
type Record struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// Expired reports whether the access token is past (or within a minute
// of) its expiry. A zero expiry never expires.
func (r Record) Expired() bool {
	if r.Expiry.IsZero() {
		return false
	}
	return time.Now().After(r.Expiry.Add(-time.Minute))
}

// Credentials is a diskv-backed credential cache.
type Credentials struct {
	d *diskv.Diskv
}

// OpenCredentials opens the cache under the configured base path.
func OpenCredentials(cfg Config) (*Credentials, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Credentials{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Load returns the cached credential, or ErrNoCredential.
func (c *Credentials) Load() (Record, error) {
	data, err := c.d.Read(credentialKey)
	if err != nil {
		return Record{}, ErrNoCredential
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Save writes the credential, replacing any previous one.
func (c *Credentials) Save(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.d.Write(credentialKey, data)
}

// Erase deletes the cached credential. It reports whether one existed.
func (c *Credentials) Erase() (bool, error) {
	if !c.d.Has(credentialKey) {
		return false, nil
	}
	if err := c.d.Erase(credentialKey); err != nil {
		return false, err
	}
	return true, nil
}
