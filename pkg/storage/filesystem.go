package storage

import (
	"context"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FilesystemStorage implements the Storage interface for interacting with
// the local filesystem.
type FilesystemStorage struct {
	Config Config
}

// NewFilesystemStorage implements the Storage interface for simple S3 like
// file system interactions.
func NewFilesystemStorage(config Config) FilesystemStorage {
	return FilesystemStorage{
		Config: config,
	}
}

// Write will write the data to the key under the configured root.
func (f FilesystemStorage) Write(ctx context.Context,
	key string,
	body []byte,
	options *Options) error {

	// make sure that the Options argument is valid
	if options == nil {
		opts := NewOptions()
		options = &opts
	}

	filename := f.buildPath(key)

	// make sure directory exists.
	dir := path.Dir(filename)

	if err := f.ensureExists(dir, options); err != nil {
		return err
	}

	mode := options.Mode
	if mode == 0 {
		mode = NewOptions().Mode
	}

	return ioutil.WriteFile(filename, body, mode)
}

// Read reads the data from a file on the local filesystem.
func (f FilesystemStorage) Read(ctx context.Context,
	key string) ([]byte, error) {

	filename := f.buildPath(key)

	// check for existence of file
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, ErrNotFound
	}

	return ioutil.ReadFile(filename)
}

// Remove removes the object stored at key.
func (f FilesystemStorage) Remove(ctx context.Context, key string) error {
	filename := f.buildPath(key)

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return ErrNotFound
	}

	return os.Remove(filename)
}

// Search returns all objects in the store under a given path.
//
// The path can be empty.
func (f FilesystemStorage) Search(ctx context.Context,
	query map[string]string) ([][]byte, error) {

	keys, err := f.List(ctx, query["path"])
	if err != nil {
		return nil, err
	}

	objects := make([][]byte, 0, len(keys))

	for _, key := range keys {
		b, err := f.Read(ctx, key)
		if err != nil {
			return nil, err
		}

		objects = append(objects, b)
	}

	return objects, nil
}

// List returns the keys, without the objects, under a given path.
func (f FilesystemStorage) List(ctx context.Context,
	path string) ([]string, error) {

	dir := f.buildPath(path)

	if err := f.ensureExists(dir, nil); err != nil {
		return nil, err
	}

	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))

	for _, info := range files {
		if info.IsDir() {
			continue
		}

		keys = append(keys, strings.Join([]string{path, info.Name()}, "/"))
	}

	return keys, nil
}

// Clear removes all objects under the path in the query.
func (f FilesystemStorage) Clear(ctx context.Context,
	query map[string]string) error {

	dir := f.buildPath(query["path"])

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return os.RemoveAll(dir)
}

func (f FilesystemStorage) buildPath(key string) string {
	parts := []string{
		f.Config.Root,
		f.Config.Bucket,
	}

	if len(key) > 0 {
		parts = append(parts, key)
	}

	s := strings.Join(parts, "/")

	return filepath.FromSlash(s)
}

func (f FilesystemStorage) ensureExists(dir string, options *Options) error {
	if options == nil {
		opts := NewOptions()
		options = &opts
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, options.DirMode); err != nil {
			return err
		}
	}

	return nil
}
