package id_gen

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicated id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewID_TimePrefix(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := newID(now)
	assert.True(t, strings.HasPrefix(id, strconv.FormatInt(now.UnixMilli(), 36)))
}
