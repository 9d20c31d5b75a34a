package card

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKnownVectors(t *testing.T) {
	assert.True(t, Validate("4539578763621486"))
	assert.False(t, Validate("1234567890123456"))
}

func TestValidateRejectsNonDigits(t *testing.T) {
	assert.False(t, Validate(""))
	assert.False(t, Validate("4539 5787 6362 1486"))
	assert.False(t, Validate("453957876362148a"))
	assert.False(t, Validate("-539578763621486"))
}

func TestGenerateProducesValidNumberWithPrefix(t *testing.T) {
	for _, bin := range []string{"453957", "378282", "549618123", "426285123456789"} {
		rec, err := Generate(bin, Overrides{})
		require.NoError(t, err, "bin %s", bin)

		assert.Len(t, rec.Number, 16)
		assert.True(t, Validate(rec.Number), "generated number %s failed validation", rec.Number)
		assert.Equal(t, bin, rec.Number[:len(bin)])
	}
}

func TestGenerateDefaultsAreInRange(t *testing.T) {
	layout := regexp.MustCompile(`^453957\d{10}\|\d{2}\|\d{2}\|\d{3}$`)

	for i := 0; i < 50; i++ {
		rec, err := Generate("453957", Overrides{})
		require.NoError(t, err)
		require.Regexp(t, layout, rec.String())

		month, err := strconv.Atoi(rec.Month)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, month, 1)
		assert.LessOrEqual(t, month, 12)

		year, err := strconv.Atoi(rec.Year)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, 25)
		assert.LessOrEqual(t, year, 30)
	}
}

func TestGenerateUsesDigitOverridesVerbatim(t *testing.T) {
	// Out-of-range overrides are deliberately not validated.
	rec, err := Generate("453957", Overrides{Month: "99", Year: "00", CVC: "0001"})
	require.NoError(t, err)

	assert.Equal(t, "99", rec.Month)
	assert.Equal(t, "00", rec.Year)
	assert.Equal(t, "0001", rec.CVC)
	assert.Equal(t, fmt.Sprintf("%s|99|00|0001", rec.Number), rec.String())
}

func TestGenerateIgnoresNonDigitOverrides(t *testing.T) {
	rec, err := Generate("453957", Overrides{Month: "jan", Year: "2x", CVC: "abc"})
	require.NoError(t, err)

	assert.Regexp(t, `^\d{2}$`, rec.Month)
	assert.Regexp(t, `^\d{2}$`, rec.Year)
	assert.Regexp(t, `^\d{3}$`, rec.CVC)
}

func TestGenerateRejectsBadPrefix(t *testing.T) {
	_, err := Generate("", Overrides{})
	assert.Error(t, err)

	_, err = Generate("45ab57", Overrides{})
	assert.Error(t, err)

	_, err = Generate("4539578763621486", Overrides{})
	assert.Error(t, err)
}

func TestRandomBINIsGeneratable(t *testing.T) {
	for i := 0; i < 20; i++ {
		bin := RandomBIN()
		rec, err := Generate(bin, Overrides{})
		require.NoError(t, err)
		assert.True(t, Validate(rec.Number))
	}
}
