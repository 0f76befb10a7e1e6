package newsletter

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

func TestSendWelcome(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	mailer := NewMailer("smtp.example.com", 587, "news@techsouth.example.com", "secret", "https://techsouth.example.com/", nil)
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	subscriber := &model.Subscriber{
		Email:            "reader@example.com",
		UnsubscribeToken: "tok123abc",
	}
	require.NoError(t, mailer.SendWelcome(subscriber))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "news@techsouth.example.com", gotFrom)
	assert.Equal(t, []string{"reader@example.com"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Welcome to TechSouth")
	assert.Contains(t, body, "https://techsouth.example.com/api/newsletter/unsubscribe/tok123abc")
}

func TestSendWelcomeUnconfiguredSkips(t *testing.T) {
	mailer := NewMailer("smtp.example.com", 587, "", "", "https://techsouth.example.com", nil)
	called := false
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		called = true
		return nil
	}

	err := mailer.SendWelcome(&model.Subscriber{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestSendWelcomeError(t *testing.T) {
	mailer := NewMailer("smtp.example.com", 587, "news@example.com", "secret", "https://example.com", nil)
	mailer.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	err := mailer.SendWelcome(&model.Subscriber{Email: "reader@example.com"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}
