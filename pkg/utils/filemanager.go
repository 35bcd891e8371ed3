// =============================================================================
// QSC Pricing Processor - File Manager Utility
// =============================================================================
//
// This module provides the file-handling pieces around the pipeline:
//   - default output path derivation (output dir + prefix + source base name)
//   - directory management
//   - archival of successfully processed source files
//
// ARCHIVAL STRATEGY:
//   - Source files are moved to the archive directory only after the output
//     workbook has been written.
//   - Failed files remain in their original location.
//   - A name collision in the archive gets a short uuid suffix instead of
//     overwriting the earlier file.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// DefaultOutputPath derives the output path for a source file when none was
// given on the command line.
//
// EXAMPLE:
//   sourcePath: "drops/qsc_march.xlsx", outputDir: "./output",
//   prefix: "QSC_Processed_"
//   result:  "output/QSC_Processed_qsc_march.xlsx"
func DefaultOutputPath(sourcePath, outputDir, prefix string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, prefix+base+".xlsx")
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// SOURCE ARCHIVAL
// =============================================================================

// ArchiveSourceFile moves a processed source file into the archive directory
// and returns the archived path.
//
// If a file with the same name already exists in the archive, a short uuid
// suffix is inserted before the extension so earlier drops are never
// overwritten.
func ArchiveSourceFile(sourcePath, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	archivePath := filepath.Join(archiveDir, filepath.Base(sourcePath))
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = uniqueArchivePath(archivePath)
	}

	if err := os.Rename(sourcePath, archivePath); err != nil {
		// Rename fails across filesystems; fall back to copy and delete.
		if err := copyFile(sourcePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(sourcePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// uniqueArchivePath inserts a short uuid suffix before the file extension.
func uniqueArchivePath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s%s", stem, suffix, ext)
}

// copyFile copies a file's contents and permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
