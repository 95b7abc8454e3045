package notify

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Notify("Phone number must be exactly 10 digits.", SeverityError)
	n.Notify("Registration Successful!", SeveritySuccess)

	assert.Equal(t,
		"[error] Phone number must be exactly 10 digits.\n[success] Registration Successful!\n",
		buf.String())
}

func TestLogNotifier_UsesErrorLevelForErrors(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.Notify("Duplicate entry Exists.", SeverityError)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Duplicate entry Exists.", entry["message"])
	assert.Equal(t, "error", entry["severity"])
}

func TestMulti_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewWriterNotifier(&a), NewWriterNotifier(&b)}

	m.Notify("Registration Successful!", SeveritySuccess)

	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
