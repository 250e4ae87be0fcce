package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlake2bFingerprinter_NormalizesFormats(t *testing.T) {
	fp := NewBlake2bFingerprinter("secret")

	local := fp.Fingerprint("0241234567")
	assert.Len(t, local, 2*fingerprintLen)
	assert.Equal(t, local, fp.Fingerprint("233241234567"))
	assert.Equal(t, local, fp.Fingerprint("+233 24 123 4567"))
	assert.NotEqual(t, local, fp.Fingerprint("0241234568"))
}

func TestBlake2bFingerprinter_Keyed(t *testing.T) {
	a := NewBlake2bFingerprinter("key-a")
	b := NewBlake2bFingerprinter("key-b")
	assert.NotEqual(t, a.Fingerprint("0241234567"), b.Fingerprint("0241234567"))
}

func TestBlake2bFingerprinter_LongKey(t *testing.T) {
	fp := NewBlake2bFingerprinter(strings.Repeat("x", 100))
	assert.NotEmpty(t, fp.Fingerprint("0241234567"))
}

func TestBlake2bFingerprinter_Empty(t *testing.T) {
	fp := NewBlake2bFingerprinter("")
	assert.Empty(t, fp.Fingerprint(""))
	assert.Empty(t, fp.Fingerprint("abc"))
}
