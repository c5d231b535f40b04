package lifecycle_test

import (
	"testing"

	"github.com/cogpn/cogpn/internal/iogazetteer"
	"github.com/cogpn/cogpn/internal/ioresolve"
	"github.com/cogpn/cogpn/internal/iotrain"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/cogpn/cogpn/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestContracts ensures that the internal implementations satisfy the
// lifecycle interfaces. The assignments fail to compile if a contract is
// broken.
func TestContracts(t *testing.T) {
	cfg := config.New()

	var insp lifecycle.Inspector = iogazetteer.NewInspector(cfg)
	var tr lifecycle.Trainer = iotrain.New(cfg)
	var an lifecycle.Annotator = ioresolve.New(cfg)

	assert.NotNil(t, insp)
	assert.NotNil(t, tr)
	assert.NotNil(t, an)
}
