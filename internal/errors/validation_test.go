package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("stats", "is required")
	ve.AddFieldError("playerID", "must be at least 0")

	s.True(ve.HasErrors())
	s.Equal("validation failed: playerID: must be at least 0; stats: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestHelpers() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("assets_dir", "  ", vb)
	errors.ValidateMin("max_ticks", 0, 1, vb)
	errors.ValidateEnum("store.backend", "sqlite", []string{"file", "redis"}, vb)
	errors.ValidateEnum("log.format", "json", []string{"text", "json"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "assets_dir: is required")
	s.Contains(err.Error(), "max_ticks: must be at least 1")
	s.Contains(err.Error(), "store.backend: must be one of: file, redis")
	s.NotContains(err.Error(), "log.format")
}
