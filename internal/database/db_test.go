package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_WithPassword(t *testing.T) {
	got := dsn("admin", "s3cret", "127.0.0.1", "3306", "portfolio")
	assert.Equal(t, "admin:s3cret@tcp(127.0.0.1:3306)/portfolio?charset=utf8mb4&parseTime=true&loc=UTC", got)
}

func TestDSN_EmptyPassword(t *testing.T) {
	got := dsn("root", "", "db", "3306", "portfolio")
	assert.Equal(t, "root@tcp(db:3306)/portfolio?charset=utf8mb4&parseTime=true&loc=UTC", got)
}
