//go:build unit

package walink_test

import (
	"strings"
	"testing"

	"cleanpro-api/internal/notification/walink"

	"github.com/stretchr/testify/assert"
)

func TestBuildURLStripsNonDigits(t *testing.T) {
	url := walink.BuildURL("+55 (53) 8155-6144", "hello")

	assert.True(t, strings.HasPrefix(url, "https://wa.me/555381556144?text="), url)
}

func TestBuildURLEncodesMessage(t *testing.T) {
	url := walink.BuildURL("555381556144", "Olá Maria! Confirmado para 10/03/2025 às 9h")

	assert.NotContains(t, url, " ")
	assert.Contains(t, url, "text=")
	assert.Contains(t, url, "10%2F03%2F2025")
}
