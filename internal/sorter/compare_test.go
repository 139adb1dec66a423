package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareScalarModes(t *testing.T) {
	text := NewExtractor(Config{Mode: TextMode()})
	assert.Equal(t, Less, Compare(text.Extract("B"), text.Extract("a")), "byte order puts upper case first")
	assert.Equal(t, Equal, Compare(text.Extract("x"), text.Extract("x")))

	num := NewExtractor(Config{Mode: NumericMode()})
	assert.Equal(t, Less, Compare(num.Extract("9"), num.Extract("10")))
	assert.Equal(t, Equal, Compare(num.Extract("junk"), num.Extract("0")))
	assert.Equal(t, Greater, Compare(num.Extract("1"), num.Extract("junk")))

	suffix := NewExtractor(Config{Mode: NumericSuffixMode()})
	assert.Equal(t, Less, Compare(suffix.Extract("999"), suffix.Extract("1k")))
	assert.Equal(t, Greater, Compare(suffix.Extract("1t"), suffix.Extract("999b")))

	month := NewExtractor(Config{Mode: MonthMode()})
	assert.Equal(t, Less, Compare(month.Extract("Feb"), month.Extract("mar")))
	assert.Equal(t, Less, Compare(month.Extract("nope"), month.Extract("jan")))
}

func TestCompareColumnsFirstMismatchWins(t *testing.T) {
	e := NewExtractor(Config{Mode: ColumnsMode(FieldSpec{1, 2})})

	assert.Equal(t, Less, Compare(e.Extract("a 1"), e.Extract("a 2")))
	assert.Equal(t, Greater, Compare(e.Extract("b 1"), e.Extract("a 9")))
	assert.Equal(t, Equal, Compare(e.Extract("a 1 zzz"), e.Extract("a 1 aaa")), "unselected columns are ignored")
	assert.Equal(t, Less, Compare(e.Extract("a"), e.Extract("a 1")), "missing column is the minimum")
}

func TestCompareIsAntisymmetric(t *testing.T) {
	e := NewExtractor(Config{Mode: ColumnsMode(FieldSpec{2})})
	lines := []string{"x b", "y a", "z", "w b"}

	for _, a := range lines {
		for _, b := range lines {
			assert.Equal(t, -Compare(e.Extract(a), e.Extract(b)), Compare(e.Extract(b), e.Extract(a)), "%q vs %q", a, b)
		}
	}
}
