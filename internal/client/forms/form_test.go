package forms

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montagemotion/backoffice/internal/client/iocli"
	"github.com/montagemotion/backoffice/internal/models"
)

// scriptedIO возвращает заранее заданные ответы на ReadInput по порядку
func scriptedIO(t *testing.T, answers ...string) *iocli.IOMock {
	t.Helper()

	i := 0
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
		ReadInputFunc: func(prompt string) (string, error) {
			require.Less(t, i, len(answers), "unexpected prompt: %s", prompt)
			answer := answers[i]
			i++
			return answer, nil
		},
	}
}

func noUpload(t *testing.T) UploadFunc {
	t.Helper()
	return func(ctx context.Context, kind models.FieldKind, path string) (string, error) {
		t.Fatalf("unexpected upload of %s", path)
		return "", nil
	}
}

func testCollection() models.Collection {
	return models.Collection{
		Name:  "faqitems",
		Title: "FAQ items",
		Fields: []models.Field{
			{Name: "category_id", Kind: models.KindText, Required: true},
			{Name: "question", Kind: models.KindText, Required: true},
			{Name: "answer", Kind: models.KindLongText, Required: true},
		},
	}
}

func TestFill_TextFields(t *testing.T) {
	io := scriptedIO(t, "cat-1", "What cameras do you use?", "Mostly cinema line bodies.")
	form := New(io, noUpload(t))

	fields, err := form.Fill(context.Background(), testCollection(), nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"category_id": "cat-1",
		"question":    "What cameras do you use?",
		"answer":      "Mostly cinema line bodies.",
	}, fields)
}

func TestFill_RequiredFieldEmpty(t *testing.T) {
	io := scriptedIO(t, "")
	form := New(io, noUpload(t))

	_, err := form.Fill(context.Background(), testCollection(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "category_id cannot be empty")
}

func TestFill_EmptyInputKeepsExisting(t *testing.T) {
	io := scriptedIO(t, "", "", "Updated answer.")
	form := New(io, noUpload(t))

	existing := map[string]string{
		"category_id": "cat-1",
		"question":    "Old question?",
		"answer":      "Old answer.",
	}

	fields, err := form.Fill(context.Background(), testCollection(), existing)
	require.NoError(t, err)

	assert.Equal(t, "cat-1", fields["category_id"])
	assert.Equal(t, "Old question?", fields["question"])
	assert.Equal(t, "Updated answer.", fields["answer"])
}

func TestFill_Enum(t *testing.T) {
	col := models.Collection{
		Name: "seo",
		Fields: []models.Field{
			{Name: "page", Kind: models.KindEnum, Required: true, Options: []string{"home", "works", "about"}},
		},
	}

	io := scriptedIO(t, "works")
	form := New(io, noUpload(t))

	fields, err := form.Fill(context.Background(), col, nil)
	require.NoError(t, err)
	assert.Equal(t, "works", fields["page"])
}

func TestFill_EnumInvalidValue(t *testing.T) {
	col := models.Collection{
		Name: "seo",
		Fields: []models.Field{
			{Name: "page", Kind: models.KindEnum, Required: true, Options: []string{"home", "works"}},
		},
	}

	io := scriptedIO(t, "blog")
	form := New(io, noUpload(t))

	_, err := form.Fill(context.Background(), col, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestFill_EnumOptionalEmpty(t *testing.T) {
	col := models.Collection{
		Name: "blogs",
		Fields: []models.Field{
			{Name: "category", Kind: models.KindEnum, Options: []string{"news", "tutorial"}},
		},
	}

	io := scriptedIO(t, "")
	form := New(io, noUpload(t))

	fields, err := form.Fill(context.Background(), col, nil)
	require.NoError(t, err)
	_, set := fields["category"]
	assert.False(t, set)
}

func TestFill_MediaUploadsLocalFile(t *testing.T) {
	// Настоящий PNG заголовок, guard смотрит на содержимое
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0600))

	col := models.Collection{
		Name: "about",
		Fields: []models.Field{
			{Name: "image", Kind: models.KindImage, Required: true},
		},
	}

	io := scriptedIO(t, path)
	uploaded := false
	form := New(io, func(ctx context.Context, kind models.FieldKind, p string) (string, error) {
		uploaded = true
		assert.Equal(t, models.KindImage, kind)
		assert.Equal(t, path, p)
		return "/uploads/abc.png", nil
	})

	fields, err := form.Fill(context.Background(), col, nil)
	require.NoError(t, err)
	assert.True(t, uploaded)
	assert.Equal(t, "/uploads/abc.png", fields["image"])
}

func TestFill_MediaAcceptsURLWithoutUpload(t *testing.T) {
	col := models.Collection{
		Name: "about",
		Fields: []models.Field{
			{Name: "image", Kind: models.KindImage, Required: true},
		},
	}

	io := scriptedIO(t, "/uploads/existing.png")
	form := New(io, noUpload(t))

	fields, err := form.Fill(context.Background(), col, nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/existing.png", fields["image"])
}

func TestFill_MediaRejectsWrongContent(t *testing.T) {
	// gif под видом png не проходит локальную проверку
	path := filepath.Join(t.TempDir(), "sneaky.png")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a\x01\x00\x01\x00"), 0600))

	col := models.Collection{
		Name: "about",
		Fields: []models.Field{
			{Name: "image", Kind: models.KindImage, Required: true},
		},
	}

	io := scriptedIO(t, path)
	form := New(io, noUpload(t))

	_, err := form.Fill(context.Background(), col, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestFill_MediaUploadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0600))

	col := models.Collection{
		Name: "about",
		Fields: []models.Field{
			{Name: "image", Kind: models.KindImage, Required: true},
		},
	}

	io := scriptedIO(t, path)
	form := New(io, func(ctx context.Context, kind models.FieldKind, p string) (string, error) {
		return "", errors.New("server unavailable")
	})

	_, err := form.Fill(context.Background(), col, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload image")
}

func TestFill_MediaEmptyKeepsExisting(t *testing.T) {
	col := models.Collection{
		Name: "about",
		Fields: []models.Field{
			{Name: "image", Kind: models.KindImage, Required: true},
		},
	}

	io := scriptedIO(t, "")
	form := New(io, noUpload(t))

	fields, err := form.Fill(context.Background(), col, map[string]string{"image": "/uploads/old.png"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/old.png", fields["image"])
}
