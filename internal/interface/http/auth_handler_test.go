package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-platform/pkg/validation"
)

func bindRegister(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req registerRequest
	return c.ShouldBindJSON(&req)
}

func TestRegisterRequestValidation(t *testing.T) {
	validation.Init()

	require.NoError(t, bindRegister(t, `{"name":"Ali","email":"ali@example.com","password":"Secret1"}`))

	// Names need at least three characters.
	err := bindRegister(t, `{"name":"Al","email":"al@example.com","password":"Secret1"}`)
	require.Error(t, err)
	assert.Contains(t, validation.ToDetails(err), "name")

	err = bindRegister(t, `{"name":"Alice","email":"not-an-email","password":"Secret1"}`)
	require.Error(t, err)
	assert.Contains(t, validation.ToDetails(err), "email")

	err = bindRegister(t, `{"name":"Alice","email":"alice@example.com","password":"weak"}`)
	require.Error(t, err)
	assert.Contains(t, validation.ToDetails(err), "password")
}
