package miners

import "testing"
import "github.com/stretchr/testify/assert"

func TestValidSupport(x *testing.T) {
	t := assert.New(x)
	for _, sup := range []float64{0, .25, .5, 1} {
		t.Nil(ValidSupport(sup))
	}
	for _, sup := range []float64{-0.001, 1.001, -1, 2} {
		t.NotNil(ValidSupport(sup), "%v should be rejected", sup)
	}
}

func TestMinCount(x *testing.T) {
	t := assert.New(x)
	t.Equal(1, MinCount(0, 100))
	t.Equal(1, MinCount(.01, 100))
	t.Equal(2, MinCount(.011, 100))
	t.Equal(50, MinCount(.5, 100))
	t.Equal(2, MinCount(.5, 4))
	t.Equal(100, MinCount(1, 100))
	t.Equal(1, MinCount(.5, 0))
}
