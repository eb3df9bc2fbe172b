package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString_Normalization(t *testing.T) {
	a := NewKey("reports", map[string]string{"type": "flood", "search": "bridge"})
	b := NewKey("reports", map[string]string{"search": "bridge", "type": "flood"})

	assert.Equal(t, a.String(), b.String(), "parameter order must not change the key")
	assert.Equal(t, "query:reports|search=bridge&type=flood", a.String())
}

func TestKeyString_DropsEmptyValues(t *testing.T) {
	withEmpty := NewKey("reports", map[string]string{"type": "", "search": "  "})
	bare := NewKey("reports", nil)

	assert.Equal(t, bare.String(), withEmpty.String(), "absent and empty filters are the same fetch")
	assert.Equal(t, "query:reports|", bare.String())
}

func TestKeyString_TrimsAndLowercasesNames(t *testing.T) {
	k := NewKey(" Reports ", map[string]string{" Type ": " flood "})

	assert.Equal(t, "query:reports|type=flood", k.String())
	assert.Equal(t, "flood", k.Param("TYPE"))
	assert.Equal(t, "", k.Param("missing"))
}

func TestNamespacePattern_TerminatorPreventsBleed(t *testing.T) {
	pattern := NamespacePattern("reports")
	assert.Equal(t, "query:reports|*", pattern)

	other := NewKey("reports_archive", map[string]string{"type": "flood"})
	prefix := strings.TrimSuffix(pattern, "*")
	assert.False(t, strings.HasPrefix(other.String(), prefix),
		"a namespace pattern must not match keys of another namespace")
}

func TestSeqKey_SeparatePrefix(t *testing.T) {
	k := NewKey("users", map[string]string{"role": "premium"})

	assert.Equal(t, "query_seq:users|role=premium", k.seqKey())
	assert.False(t, strings.HasPrefix(k.seqKey(), keyPrefix),
		"sequence counters must survive namespace invalidation")
}
