package output

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// FileTree renders a directory's contents as a tree. Fixture files usually
// sit flat below the source directory but nested paths are handled so the
// view stays truthful if an operator drops extra material in there.
type FileTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

func NewFileTree(rootLabel string) FileTree {
	return FileTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t FileTree) getDir(dirPath string) (dir gotree.Tree) {
	if dirPath == "." {
		return t.tree
	}
	dir = t.dirs[dirPath]
	if dir == nil {
		parentDir := t.getDir(filepath.Dir(dirPath))
		dir = parentDir.Add(filepath.Base(dirPath))
		t.dirs[dirPath] = dir
	}
	return
}

// InsertPath adds the file at the given root-relative path, creating
// intermediate directory nodes as needed.
func (t FileTree) InsertPath(filePath string, nodeSuffix string) {
	dir := t.getDir(filepath.Dir(filePath))
	dir.Add(filepath.Base(filePath) + nodeSuffix)
}

func (t FileTree) Render() string {
	return t.tree.Print()
}
