package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(FormatJSON, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "json-line", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"json-line"`)

	buf.Reset()
	l, err = New(FormatText, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "text-line")
	assert.Contains(t, buf.String(), "msg=text-line")

	l, err = New(FormatZap, &buf)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	_, err = New("xml", &buf)
	assert.Error(t, err)
}
