package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagemotion/backoffice/internal/models"
)

// Минимальные сигнатуры файлов для определения типа по содержимому
var (
	pngHead  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHead = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	webpHead = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
	gifHead  = []byte("GIF89a\x01\x00\x01\x00")
	mp4Head  = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")
	movHead  = []byte("\x00\x00\x00\x14ftypqt  \x00\x00\x00\x00")
	textHead = []byte("just some text, definitely not an image")
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		head    []byte
		kind    models.FieldKind
		size    int64
		wantErr bool
	}{
		{
			name: "png within limit",
			kind: models.KindImage,
			size: 4 << 20,
			head: pngHead,
		},
		{
			name: "jpeg within limit",
			kind: models.KindImage,
			size: 100,
			head: jpegHead,
		},
		{
			name: "webp within limit",
			kind: models.KindImage,
			size: 1 << 20,
			head: webpHead,
		},
		{
			name:    "gif rejected",
			kind:    models.KindImage,
			size:    100,
			head:    gifHead,
			wantErr: true,
			errMsg:  "image/gif is not allowed",
		},
		{
			name:    "image over 5MiB rejected",
			kind:    models.KindImage,
			size:    6 << 20,
			head:    pngHead,
			wantErr: true,
			errMsg:  "exceeds limit",
		},
		{
			name: "mp4 within limit",
			kind: models.KindVideo,
			size: 50 << 20,
			head: mp4Head,
		},
		{
			name: "quicktime within limit",
			kind: models.KindVideo,
			size: 10 << 20,
			head: movHead,
		},
		{
			name:    "video over 100MiB rejected",
			kind:    models.KindVideo,
			size:    101 << 20,
			head:    mp4Head,
			wantErr: true,
			errMsg:  "exceeds limit",
		},
		{
			name:    "plain text rejected as image",
			kind:    models.KindImage,
			size:    100,
			head:    textHead,
			wantErr: true,
			errMsg:  "not allowed",
		},
		{
			name:    "empty file rejected",
			kind:    models.KindImage,
			size:    0,
			head:    nil,
			wantErr: true,
			errMsg:  "file is empty",
		},
		{
			name:    "text field kind is not uploadable",
			kind:    models.KindText,
			size:    100,
			head:    pngHead,
			wantErr: true,
			errMsg:  "not uploadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.kind, tt.size, tt.head)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUploadFile(t *testing.T) {
	dir := t.TempDir()

	// Валидный png файл
	pngPath := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(pngPath, pngHead, 0o600))

	// Файл с расширением png, но содержимым gif: расширению не доверяем
	fakePath := filepath.Join(dir, "fake.png")
	require.NoError(t, os.WriteFile(fakePath, gifHead, 0o600))

	err := ValidateUploadFile(models.KindImage, pngPath)
	assert.NoError(t, err)

	err = ValidateUploadFile(models.KindImage, fakePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image/gif")

	err = ValidateUploadFile(models.KindImage, filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat file")
}
