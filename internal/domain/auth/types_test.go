package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

func TestCaptureCookiesRoundTrip(t *testing.T) {
	in := []*http.Cookie{
		{Name: "connect.sid", Value: "s%3Aabc", Path: "/", Domain: "localhost", HttpOnly: true},
		nil,
		{Name: "", Value: "dropped"},
	}

	captured := CaptureCookies(in)
	assert.Len(t, captured, 1)
	assert.Equal(t, "connect.sid", captured[0].Name)

	ck := captured[0].HTTPCookie()
	assert.Equal(t, "s%3Aabc", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, "localhost", ck.Domain)
}

func TestSessionRole(t *testing.T) {
	assert.Equal(t, model.Role(""), Session{}.Role())
	s := Session{User: &model.User{Role: model.RoleRecruiter}}
	assert.Equal(t, model.RoleRecruiter, s.Role())
}
