package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-(\d{13,})-(\d{1,3})$`)

func TestGenerateOrderNumber_Format(t *testing.T) {
	n := GenerateOrderNumber()
	m := orderNumberPattern.FindStringSubmatch(n)
	require.NotNil(t, m, "numéro inattendu: %s", n)

	ts, err := strconv.ParseInt(m[1], 10, 64)
	require.NoError(t, err)
	now := time.Now().UnixMilli()
	assert.InDelta(t, now, ts, 5000, "le préfixe doit être un timestamp ms courant")

	suffix, err := strconv.Atoi(m[2])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, suffix, 0)
	assert.Less(t, suffix, 1000)
}

func TestGenerateOrderNumber_PrefixNonDecreasing(t *testing.T) {
	extract := func(n string) int64 {
		parts := strings.Split(n, "-")
		ts, _ := strconv.ParseInt(parts[1], 10, 64)
		return ts
	}
	prev := extract(GenerateOrderNumber())
	for i := 0; i < 50; i++ {
		cur := extract(GenerateOrderNumber())
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
