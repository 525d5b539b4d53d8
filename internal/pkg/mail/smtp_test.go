package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTP_RequiresHostPort(t *testing.T) {
	_, err := NewSMTP(SMTPConfig{})
	assert.ErrorIs(t, err, ErrSMTPHostPortRequired)
}

func TestSMTP_SendValidatesBeforeDialing(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "127.0.0.1", Port: 1})
	require.NoError(t, err)

	err = s.Send(context.Background(), Message{From: "a@b.c"})
	assert.ErrorIs(t, err, ErrSMTPNoRecipients)

	err = s.Send(context.Background(), Message{To: []string{"x@y.z"}})
	assert.ErrorIs(t, err, ErrSMTPNoSender)
}

func TestCompose(t *testing.T) {
	t.Run("alternative", func(t *testing.T) {
		raw, err := compose(Message{
			From:     "shop@example.com",
			To:       []string{"a@example.com"},
			Bcc:      []string{"hidden@example.com"},
			Subject:  "Order #1",
			TextBody: "plain",
			HTMLBody: "<b>html</b>",
		})
		require.NoError(t, err)

		s := string(raw)
		assert.Contains(t, s, "To: a@example.com\r\n")
		assert.Contains(t, s, "multipart/alternative; boundary=")
		assert.Contains(t, s, "plain")
		assert.Contains(t, s, "<b>html</b>")
		assert.NotContains(t, s, "hidden@example.com")
	})

	t.Run("text only", func(t *testing.T) {
		raw, err := compose(Message{From: "f@x", To: []string{"t@x"}, TextBody: "hello"})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(raw), "\r\n\r\nhello"))
		assert.Contains(t, string(raw), "text/plain; charset=UTF-8")
	})
}

func TestMessage_Recipients(t *testing.T) {
	m := Message{To: []string{"a"}, Cc: []string{"b"}, Bcc: []string{"c"}}
	assert.Equal(t, []string{"a", "b", "c"}, m.Recipients())
}
