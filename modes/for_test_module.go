package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest provides the development mode, in which configuration files
// outside the test and network proxies are ignored.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
