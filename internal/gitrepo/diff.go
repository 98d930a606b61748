package gitrepo

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders pending changes as a unified diff. cached=false compares the
// index against the worktree (like git diff); cached=true compares HEAD
// against the index (like git diff --cached). Returns "" when nothing
// differs. Untracked files never appear; staged new files do.
func (r *Repo) Diff(cached bool) (string, error) {
	st, err := r.wt.Status()
	if err != nil {
		return "", err
	}

	var headTree *object.Tree
	if head, herr := r.repo.Head(); herr == nil {
		commit, cerr := r.repo.CommitObject(head.Hash())
		if cerr != nil {
			return "", cerr
		}
		headTree, err = commit.Tree()
		if err != nil {
			return "", err
		}
	} else if !errors.Is(herr, plumbing.ErrReferenceNotFound) {
		return "", herr
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return "", err
	}

	var paths []string
	for p, fs := range st {
		if cached {
			if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
				paths = append(paths, p)
			}
		} else {
			if fs.Worktree == git.Modified || fs.Worktree == git.Deleted {
				paths = append(paths, p)
			}
		}
	}
	sort.Strings(paths)

	var filePatches []fdiff.FilePatch
	for _, p := range paths {
		var from, to *fileEntry
		if cached {
			if from, err = r.treeEntry(headTree, p); err != nil {
				return "", err
			}
			if to, err = r.indexEntry(idx, p); err != nil {
				return "", err
			}
		} else {
			if from, err = r.indexEntry(idx, p); err != nil {
				return "", err
			}
			if to, err = r.worktreeEntry(idx, p); err != nil {
				return "", err
			}
		}
		if from == nil && to == nil {
			continue
		}
		filePatches = append(filePatches, buildFilePatch(from, to))
	}
	if len(filePatches) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	enc := fdiff.NewUnifiedEncoder(&buf, fdiff.DefaultContextLines)
	if err := enc.Encode(&patch{filePatches: filePatches}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fileEntry is one side of a file comparison.
type fileEntry struct {
	path    string
	mode    filemode.FileMode
	hash    plumbing.Hash
	content string
}

func (r *Repo) treeEntry(tree *object.Tree, path string) (*fileEntry, error) {
	if tree == nil {
		return nil, nil
	}
	f, err := tree.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	content, err := f.Contents()
	if err != nil {
		return nil, err
	}
	return &fileEntry{path: path, mode: f.Mode, hash: f.Hash, content: content}, nil
}

func (r *Repo) indexEntry(idx *index.Index, path string) (*fileEntry, error) {
	e, err := idx.Entry(path)
	if errors.Is(err, index.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	blob, err := r.repo.BlobObject(e.Hash)
	if err != nil {
		return nil, err
	}
	reader, err := blob.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return &fileEntry{path: path, mode: e.Mode, hash: e.Hash, content: string(content)}, nil
}

func (r *Repo) worktreeEntry(idx *index.Index, path string) (*fileEntry, error) {
	f, err := r.wt.Filesystem.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	mode := filemode.Regular
	if e, err := idx.Entry(path); err == nil {
		mode = e.Mode
	}
	return &fileEntry{
		path:    path,
		mode:    mode,
		hash:    plumbing.ComputeHash(plumbing.BlobObject, content),
		content: string(content),
	}, nil
}

func buildFilePatch(from, to *fileEntry) fdiff.FilePatch {
	fp := &filePatch{}
	var srcContent, dstContent string
	if from != nil {
		fp.from = &fileSide{path: from.path, mode: from.mode, hash: from.hash}
		srcContent = from.content
	}
	if to != nil {
		fp.to = &fileSide{path: to.path, mode: to.mode, hash: to.hash}
		dstContent = to.content
	}

	if isBinary(srcContent) || isBinary(dstContent) {
		fp.binary = true
		return fp
	}

	for _, d := range diff.Do(srcContent, dstContent) {
		var op fdiff.Operation
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = fdiff.Add
		case diffmatchpatch.DiffDelete:
			op = fdiff.Delete
		default:
			op = fdiff.Equal
		}
		fp.chunks = append(fp.chunks, &textChunk{content: d.Text, op: op})
	}
	return fp
}

func isBinary(content string) bool {
	return strings.ContainsRune(content, '\x00')
}

// patch, filePatch, fileSide and textChunk satisfy the plumbing/format/diff
// interfaces so the UnifiedEncoder can render status-derived comparisons.
type patch struct {
	filePatches []fdiff.FilePatch
}

func (p *patch) FilePatches() []fdiff.FilePatch { return p.filePatches }

func (p *patch) Message() string { return "" }

type filePatch struct {
	from, to *fileSide
	binary   bool
	chunks   []fdiff.Chunk
}

func (f *filePatch) IsBinary() bool { return f.binary }

func (f *filePatch) Files() (fdiff.File, fdiff.File) {
	var from, to fdiff.File
	if f.from != nil {
		from = f.from
	}
	if f.to != nil {
		to = f.to
	}
	return from, to
}

func (f *filePatch) Chunks() []fdiff.Chunk { return f.chunks }

type fileSide struct {
	path string
	mode filemode.FileMode
	hash plumbing.Hash
}

func (f *fileSide) Hash() plumbing.Hash { return f.hash }

func (f *fileSide) Mode() filemode.FileMode { return f.mode }

func (f *fileSide) Path() string { return f.path }

type textChunk struct {
	content string
	op      fdiff.Operation
}

func (c *textChunk) Content() string { return c.content }

func (c *textChunk) Type() fdiff.Operation { return c.op }
