package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM appointments WHERE id = $1"))
	assert.Equal(t, "insert", Operation("  INSERT INTO appointments (name) VALUES ($1)"))
	assert.Equal(t, "delete", Operation("\nDELETE FROM appointments"))
	assert.Equal(t, "unknown", Operation("   "))
}
