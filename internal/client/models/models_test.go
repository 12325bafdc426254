package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDownloadGrant_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{"no expiry", time.Time{}, false},
		{"in the future", now.Add(time.Minute), false},
		{"exactly now", now, true},
		{"in the past", now.Add(-time.Second), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := DownloadGrant{ExpiresAt: tt.expires}
			assert.Equal(t, tt.want, g.Expired(now))
		})
	}
}
