package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"alice", "a.b@c", "user_1", "name+tag", "x-y"}
	for _, username := range valid {
		assert.True(t, ValidUsername(username), username)
	}

	// сопоставление идёт с начала строки
	invalid := []string{"", "!", " alice", "#name"}
	for _, username := range invalid {
		assert.False(t, ValidUsername(username), username)
	}
}
