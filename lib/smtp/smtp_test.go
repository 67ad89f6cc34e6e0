package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run(`not configured client skips sending`, func(t *testing.T) {
		client := NewInstance("", "", "", "", true)
		require.False(t, client.IsConfigured())
		require.Nil(t, client.SendEMail("hr@example.com", "subject", "body"))
	})

	t.Run(`buildMessage check`, func(t *testing.T) {
		msg := buildMessage("robot@example.com", "hr@example.com", "Кандидат принят", "Rohan Mehta")
		require.True(t, strings.HasPrefix(msg, "From: robot@example.com\r\n"))
		require.Contains(t, msg, "To: hr@example.com\r\n")
		require.Contains(t, msg, "Subject: HR Pipeline - Кандидат принят\r\n")
		require.Contains(t, msg, "charset=\"UTF-8\"")
		require.True(t, strings.HasSuffix(msg, "Rohan Mehta\r\n"))
	})
}
