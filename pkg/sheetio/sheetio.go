// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sheetio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager reads sheet and config files and writes results
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// 🔧 Manager implements FileManager relative to a base directory
type Manager struct {
	baseDir string // Base directory for relative paths
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a new file manager. Relative paths are resolved against baseDir.
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 getAbsPath returns the path joined to the base directory unless it is already absolute
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ReadFile reads the whole file into memory
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	absPath := m.getAbsPath(path)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", absPath).
		Int("bytes", len(content)).
		Str("checksum", calculateChecksum(content)).
		Msg("read file")

	return content, nil
}

// WriteFileAtomic writes content to a temp file next to path and renames it into place
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	tempPath := absPath + ".tmp"

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	// Write to temp file
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		os.Remove(tempPath) // Clean up partial temp file
		return errors.Errorf("writing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", absPath).
		Int("bytes", len(content)).
		Str("checksum", calculateChecksum(content)).
		Msg("wrote file")

	return nil
}

// FileExists reports whether path exists
func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}
