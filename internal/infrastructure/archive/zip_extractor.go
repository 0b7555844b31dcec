package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"promoreel/internal/domain/entities"
)

const (
	maxFiles      = 50
	maxTotalBytes = 500 * 1024
)

// allowedExtensions is the source/text/markup allow-list for prompt context.
var allowedExtensions = map[string]bool{
	".go": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".py": true, ".rb": true, ".rs": true, ".java": true, ".kt": true,
	".c": true, ".h": true, ".cpp": true, ".cs": true, ".swift": true,
	".php": true, ".sh": true, ".sql": true,
	".html": true, ".css": true, ".scss": true, ".vue": true, ".svelte": true,
	".md": true, ".txt": true, ".json": true, ".yaml": true, ".yml": true,
	".toml": true, ".xml": true, ".env": true, ".cfg": true, ".ini": true,
}

// ExtractTextFiles pulls the promptable text files out of a project zip:
// extension allow-listed, binary content rejected, capped at 50 files and
// 500KB of cumulative text, README-named files sorted first.
func ExtractTextFiles(zipData []byte) ([]entities.ProjectFile, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}

	var files []entities.ProjectFile
	totalBytes := 0

	for _, entry := range reader.File {
		if len(files) >= maxFiles || totalBytes >= maxTotalBytes {
			break
		}
		if entry.FileInfo().IsDir() {
			continue
		}

		name := entry.Name
		base := path.Base(name)
		if strings.HasPrefix(base, ".") && !allowedExtensions[strings.ToLower(base)] {
			continue
		}
		if !allowedExtensions[strings.ToLower(path.Ext(base))] && !isReadme(base) {
			continue
		}

		content, err := readEntry(entry)
		if err != nil {
			continue
		}
		if bytes.ContainsRune(content, 0) {
			// Null byte means binary content that slipped past the
			// extension filter.
			continue
		}

		remaining := maxTotalBytes - totalBytes
		if len(content) > remaining {
			content = content[:remaining]
		}
		totalBytes += len(content)

		files = append(files, entities.ProjectFile{
			Name:    name,
			Content: string(content),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("archive contained no usable text files")
	}

	// README first so the script prompt leads with the project's own pitch.
	sort.SliceStable(files, func(i, j int) bool {
		return isReadme(path.Base(files[i].Name)) && !isReadme(path.Base(files[j].Name))
	})

	return files, nil
}

func isReadme(base string) bool {
	return strings.HasPrefix(strings.ToLower(base), "readme")
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(io.LimitReader(rc, maxTotalBytes+1))
}
