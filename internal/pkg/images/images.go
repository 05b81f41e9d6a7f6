package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidDataURI = errors.New("image is not a valid base64 data URI")

// SaveDataURI декодирует картинку вида "data:image/png;base64,..." и сохраняет
// её в mediaDir. Возвращает имя сохранённого файла.
func SaveDataURI(mediaDir, dataURI string) (string, error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return "", ErrInvalidDataURI
	}

	meta, payload, found := strings.Cut(dataURI, ";base64,")
	if !found || payload == "" {
		return "", ErrInvalidDataURI
	}
	ext := strings.TrimPrefix(meta, "data:image/")
	if ext == "" || strings.ContainsAny(ext, "/\\.") {
		return "", ErrInvalidDataURI
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidDataURI
	}

	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	name := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(mediaDir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return name, nil
}

// URL строит публичный путь до сохранённого файла.
func URL(name string) string {
	if name == "" {
		return ""
	}
	return "/media/" + name
}
