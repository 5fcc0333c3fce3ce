package memory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aanand-mishra/names-api/internal/storage/storagetest"
)

type contractSuite struct {
	storagetest.Suite
}

func (s *contractSuite) SetupTest() {
	s.Store = New()
}

func TestMemoryStoreContract(t *testing.T) {
	suite.Run(t, new(contractSuite))
}
