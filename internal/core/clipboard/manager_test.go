package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.readErr }

func (f *fakeBackend) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func TestInternalRegister(t *testing.T) {
	m := NewManager(false)
	require.NoError(t, m.Write([]byte("hello")))

	got := m.Read()
	assert.Equal(t, "hello", string(got))

	got[0] = 'J'
	assert.Equal(t, "hello", string(m.Read()), "read returns a copy")
}

func TestBackendRoundTrip(t *testing.T) {
	b := &fakeBackend{}
	m := NewManagerWithBackend(b)

	require.NoError(t, m.Write([]byte("shared")))
	assert.Equal(t, "shared", b.text)

	b.text = "from another program"
	assert.Equal(t, "from another program", string(m.Read()))
}

func TestBackendFailuresFallBack(t *testing.T) {
	b := &fakeBackend{writeErr: errors.New("no display"), readErr: errors.New("no display")}
	m := NewManagerWithBackend(b)

	err := m.Write([]byte("kept"))
	assert.ErrorContains(t, err, "no display")
	assert.Equal(t, "kept", string(m.Read()))
}
