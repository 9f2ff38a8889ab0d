package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue_ImplicitDecimal(t *testing.T) {
	t.Run("strips leading zeros", func(t *testing.T) {
		assert.Equal(t, "123,45", FormatValue("00012345", "zamount", false, 2))
	})

	t.Run("pads short values", func(t *testing.T) {
		assert.Equal(t, "0,05", FormatValue("5", "zamount", false, 2))
		assert.Equal(t, "0,50", FormatValue("50", "zamount", false, 2))
	})

	t.Run("blank renders as zero", func(t *testing.T) {
		assert.Equal(t, "0,00", FormatValue("", "zamount", false, 2))
		assert.Equal(t, "0", FormatValue("  ", "zamount", false, 0))
	})

	t.Run("all zeros keep a zero integer part", func(t *testing.T) {
		assert.Equal(t, "0,00", FormatValue("0000", "zamount", false, 2))
	})

	t.Run("thousands grouping", func(t *testing.T) {
		assert.Equal(t, "1.234.567,89", FormatValue("123456789", "zamount", true, 2))
	})
}

func TestFormatValue_ExplicitDecimal(t *testing.T) {
	t.Run("latin separators with grouping", func(t *testing.T) {
		assert.Equal(t, "1.234.567,89", FormatValue("1234567,89", "amount", true, 2))
		assert.Equal(t, "1.234.567,89", FormatValue("1.234.567,89", "amount", true, 2))
	})

	t.Run("negative sign stays outside the grouping", func(t *testing.T) {
		assert.Equal(t, "-1.234,50", FormatValue("-1234,5", "amount", true, 2))
	})

	t.Run("missing decimal separator gets zero fraction", func(t *testing.T) {
		assert.Equal(t, "123,00", FormatValue("123", "amount", false, 2))
	})

	t.Run("amounts default to two decimal places", func(t *testing.T) {
		assert.Equal(t, "123,00", FormatValue("123", "amount", false, 0))
	})

	t.Run("numeric keeps scale zero", func(t *testing.T) {
		assert.Equal(t, "1234", FormatValue("1.234", "numeric", false, 0))
	})

	t.Run("numeric grouped output carries the legacy zero fraction", func(t *testing.T) {
		assert.Equal(t, "1.234,00", FormatValue("1234", "numeric", true, 0))
	})

	t.Run("fraction padded to requested scale", func(t *testing.T) {
		assert.Equal(t, "7,50", FormatValue("7,5", "amount", false, 2))
	})
}

func TestFormatValue_Fallbacks(t *testing.T) {
	t.Run("malformed input passes through untouched", func(t *testing.T) {
		assert.Equal(t, "12x45", FormatValue("12x45", "amount", false, 2))
	})

	t.Run("malformed input keeps surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, " not-a-number ", FormatValue(" not-a-number ", "amount", true, 2))
	})

	t.Run("non numeric kinds return the trimmed raw value", func(t *testing.T) {
		assert.Equal(t, "hello", FormatValue("  hello  ", "text", true, 2))
	})
}
