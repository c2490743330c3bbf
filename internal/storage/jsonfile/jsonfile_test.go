package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/storage/jsonfile"
)

type record struct {
	Name  string         `json:"name"`
	Stats map[string]int `json:"stats"`
}

type JSONFileTestSuite struct {
	suite.Suite
	dir string
}

func TestJSONFileSuite(t *testing.T) {
	suite.Run(t, new(JSONFileTestSuite))
}

func (s *JSONFileTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *JSONFileTestSuite) TestSaveThenLoad() {
	path := filepath.Join(s.dir, "nested", "deeper", "record.json")
	in := record{Name: "Hero", Stats: map[string]int{"HP": 100}}

	s.Require().NoError(jsonfile.Save(path, in))

	var out record
	s.Require().NoError(jsonfile.Load(path, &out))
	s.Equal(in, out)
}

func (s *JSONFileTestSuite) TestSaveUsesTwoSpaceIndent() {
	path := filepath.Join(s.dir, "record.json")
	s.Require().NoError(jsonfile.Save(path, record{Name: "Hero"}))

	raw, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Equal("{\n  \"name\": \"Hero\",\n  \"stats\": null\n}\n", string(raw))
}

func (s *JSONFileTestSuite) TestLoadMissing() {
	var out record
	err := jsonfile.Load(filepath.Join(s.dir, "nope.json"), &out)
	s.True(errors.IsNotFound(err))
}

func (s *JSONFileTestSuite) TestLoadMalformed() {
	path := filepath.Join(s.dir, "bad.json")
	s.Require().NoError(os.WriteFile(path, []byte("{not json"), 0o644))

	var out record
	err := jsonfile.Load(path, &out)
	s.True(errors.IsMalformed(err))
	s.Equal(path, errors.GetMeta(err)["path"])
}

func (s *JSONFileTestSuite) TestLoadDirectoryIsIO() {
	var out record
	err := jsonfile.Load(s.dir, &out)
	s.True(errors.IsIO(err))
}

func (s *JSONFileTestSuite) TestSaveOverwritesInPlace() {
	path := filepath.Join(s.dir, "record.json")
	s.Require().NoError(jsonfile.Save(path, record{Name: "first"}))
	s.Require().NoError(jsonfile.Save(path, record{Name: "second"}))

	var out record
	s.Require().NoError(jsonfile.Load(path, &out))
	s.Equal("second", out.Name)
}
