//go:build linux

package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpireTimeout(t *testing.T) {
	assert.Equal(t, int32(10000), expireTimeout(10*time.Second))
	assert.Equal(t, int32(-1), expireTimeout(0))
}
