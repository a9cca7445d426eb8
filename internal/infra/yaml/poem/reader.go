package poem

import (
	"context"
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"github.com/lloydmeta/notably/internal/domain/poem"
)

// NewReader returns a poem.Reader that re-reads the YAML file at path on every call,
// so edits show up without a restart
func NewReader(path string) poem.Reader {
	return &fileReader{path: path}
}

type fileReader struct {
	path string
}

func (f *fileReader) Read(ctx context.Context) (*poem.Poem, error) {
	contents, err := ioutil.ReadFile(f.path)
	if err != nil {
		return nil, poem.FileAccess{Path: f.path, Cause: err}
	}
	var p poem.Poem
	if err := yaml.Unmarshal(contents, &p); err != nil {
		return nil, poem.Unparseable{Path: f.path, Cause: err}
	}
	return &p, nil
}
