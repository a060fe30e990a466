package assert

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// EqualToFixture compares output with the golden file
// testdata/<a.T.Name()>_<fixtureName>.txt.
// If GEN_FIXTURE=true is set, it writes output to the golden file and passes the test.
func (a *Assert) EqualToFixture(fixtureName string, output string) {
	fixtureFileName := fmt.Sprintf("%s_%s.txt", a.T.Name(), fixtureName)
	fixturePath := filepath.Join("testdata", fixtureFileName)

	if os.Getenv("GEN_FIXTURE") == "true" {
		err := os.MkdirAll(filepath.Dir(fixturePath), 0755)
		a.NoError(err, "Failed to create fixture directory")
		err = os.WriteFile(fixturePath, []byte(output), 0644)
		a.NoError(err, "Failed to write fixture file")
		return // Skip comparison when generating fixtures
	}

	expected, err := os.ReadFile(fixturePath)
	a.NoError(err, "Failed to read fixture file")

	a.Equal(string(expected), output, "Output does not match fixture %s", fixturePath)
}
