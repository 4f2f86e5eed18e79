package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	entry := Entry()

	require.NotNil(t, entry)
	assert.Equal(t, "odooconn", entry.Data["library"])
}

func TestRegisterSecret(t *testing.T) {
	t.Run("masks registered secrets", func(t *testing.T) {
		RegisterSecret("s3cr3t")
		formatter := &maskingFormatter{wrapped: &logrus.TextFormatter{DisableTimestamp: true}}
		entry := logrus.WithField("password", "s3cr3t")
		entry.Level = logrus.InfoLevel
		entry.Message = "authenticating with s3cr3t"

		line, err := formatter.Format(entry)

		require.NoError(t, err)
		assert.NotContains(t, string(line), "s3cr3t")
		assert.Contains(t, string(line), "****")
	})

	t.Run("empty secret is ignored", func(t *testing.T) {
		before := len(secrets)
		RegisterSecret("")
		assert.Len(t, secrets, before)
	})
}
