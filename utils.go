package main

import (
	"github.com/goccy/go-yaml"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"time"
)

// CheckCrashes decides if Check panics. Loading code turns it off to retry
// reads of files that are still being written.
var CheckCrashes = true

// CheckFailed is the last error Check got while CheckCrashes was off.
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. The loaders take an FS so the game
// reads its data the same way from the disk, from the executable or from a
// test's fstest.MapFS.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

// LoadImage decodes an image. It returns the decoded image, not an
// ebitengine image, because the world reads its pixels.
func LoadImage(fsys FS, name string) image.Image {
	file, err := fsys.Open(name)
	Check(err)
	if err != nil {
		return nil
	}
	defer CloseFile(file)

	img, _, err := image.Decode(file)
	Check(err)
	return img
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	Check(yaml.Unmarshal(data, v))
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// GetFiles lists the files in dir matching pattern, sorted by name.
func GetFiles(fsys FS, dir string, pattern string) []string {
	var files []string
	entries, err := fsys.ReadDir(dir)
	Check(err)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		Check(err)
		if matched {
			files = append(files, path.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)
	return files
}

// GetDirs lists the folders in dir, sorted by name.
func GetDirs(fsys FS, dir string) []string {
	var dirs []string
	entries, err := fsys.ReadDir(dir)
	Check(err)
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	slices.Sort(dirs)
	return dirs
}

// FolderWatcher tells if anything in a folder, or in the folders inside it,
// changed since the last time it was asked.
type FolderWatcher struct {
	Folder string
	times  map[string]time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	times := map[string]time.Time{}
	err := filepath.WalkDir(f.Folder, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		times[p] = info.ModTime()
		return nil
	})
	Check(err)

	changed := len(times) != len(f.times)
	for p, t := range times {
		if f.times[p] != t {
			changed = true
		}
	}
	f.times = times
	return changed
}
